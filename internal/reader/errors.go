package reader

import "errors"

var (
	ErrInvalidCount     = errors.New("invalid event count")
	ErrFieldCount       = errors.New("expected 4 fields: <add|del> <timestamp> <path> <signature>")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidSignature = errors.New("invalid content signature")
	ErrNotChronological = errors.New("timestamp precedes previous event")
	ErrRead             = errors.New("failed to read trace")
)
