package report

import "fsevents/internal/event"

// Sink совпадает с correlator.Sink; объявлен здесь, чтобы пакет не зависел от коррелятора.
type Sink interface {
	Emit(action event.Action)
}
