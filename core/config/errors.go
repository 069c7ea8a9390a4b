package config

import "errors"

var (
	// ErrInvalidConfigType is returned when Load receives anything other than
	// a non-nil pointer to a struct.
	ErrInvalidConfigType = errors.New("config must be a non-nil struct pointer")
	// ErrParseConfig is returned when environment parsing fails.
	ErrParseConfig = errors.New("failed to parse config from environment")
)
