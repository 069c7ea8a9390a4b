package notify

import "errors"

var (
	// ErrBusClosed is returned when publishing to a closed bus.
	ErrBusClosed = errors.New("notification bus is closed")
)
