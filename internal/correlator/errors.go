package correlator

import "errors"

var (
	ErrFinalized = errors.New("correlator is finalized")
	ErrNilSink   = errors.New("sink is nil")
)
