package correlator

import "fsevents/internal/event"

// Sink получает разрешенные действия в порядке разрешения
type Sink interface {
	Emit(action event.Action)
}
