package event

import "errors"

var (
	ErrUnknownKind = errors.New("unknown event kind")
)
