package localfile

import "errors"

var (
	// ErrEmptyPath is returned when constructing a backend without a file path.
	ErrEmptyPath = errors.New("state file path is required")
	// ErrOpenStateFile is returned when the existing state file cannot be read.
	ErrOpenStateFile = errors.New("failed to open state file")
	// ErrWriteStateFile is returned when rewriting the state file fails.
	ErrWriteStateFile = errors.New("failed to write state file")
)
