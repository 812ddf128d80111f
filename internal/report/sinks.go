package report

import "fsevents/internal/event"

// Recorder collects emitted actions in memory.
type Recorder struct {
	actions []event.Action
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(action event.Action) {
	r.actions = append(r.actions, action)
}

func (r *Recorder) Actions() []event.Action {
	return r.actions
}

// Tally считает действия по типу.
type Tally struct {
	counts map[event.ActionKind]int
	total  int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[event.ActionKind]int)}
}

func (t *Tally) Emit(action event.Action) {
	t.counts[action.Kind]++
	t.total++
}

func (t *Tally) Count(kind event.ActionKind) int {
	return t.counts[kind]
}

func (t *Tally) Total() int {
	return t.total
}

func (t *Tally) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"added":   t.counts[event.Added],
		"deleted": t.counts[event.Deleted],
		"renamed": t.counts[event.Renamed],
		"moved":   t.counts[event.Moved],
		"total":   t.total,
	}
}

type fanout []Sink

// Fanout передает каждое действие всем приемникам по порядку.
func Fanout(sinks ...Sink) Sink {
	return fanout(sinks)
}

func (f fanout) Emit(action event.Action) {
	for _, s := range f {
		s.Emit(action)
	}
}
