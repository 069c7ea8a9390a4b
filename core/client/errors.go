package client

import "errors"

var (
	// ErrInvalidBaseURL is returned when constructing a client with a missing
	// or unparseable base address.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrNoData is returned when decoding a failed or empty result payload.
	ErrNoData = errors.New("result carries no data payload")
)
