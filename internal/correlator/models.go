package correlator

import (
	"log/slog"

	"fsevents/internal/event"
)

// Config содержит настройки для Correlator
type Config struct {
	Logger *slog.Logger
}

// group - буферизованная последовательность событий, предположительно
// описывающая одну операцию. Не бывает пустой.
type group struct {
	events []event.Event
}

func newGroup(first event.Event) *group {
	return &group{events: []event.Event{first}}
}

func (g *group) first() event.Event {
	return g.events[0]
}

func (g *group) append(e event.Event) {
	g.events = append(g.events, e)
}

func (g *group) size() int {
	return len(g.events)
}

// lastDirectory returns the nearest directory event scanning backward.
func (g *group) lastDirectory() (event.Event, bool) {
	for i := len(g.events) - 1; i >= 0; i-- {
		if g.events[i].IsDirectory() {
			return g.events[i], true
		}
	}
	return event.Event{}, false
}

func (g *group) hasSignature(signature string) bool {
	for _, e := range g.events {
		if e.Signature == signature {
			return true
		}
	}
	return false
}
