package event

import "fmt"

// ActionKind - семантическая операция, восстановленная из трассы
type ActionKind int

const (
	Added ActionKind = iota + 1
	Deleted
	Renamed
	Moved
)

func (k ActionKind) String() string {
	switch k {
	case Added:
		return "Added"
	case Deleted:
		return "Deleted"
	case Renamed:
		return "Renamed"
	case Moved:
		return "Moved"
	default:
		return "Unknown"
	}
}

// Action is a resolved semantic operation together with the event that represents it.
type Action struct {
	Kind    ActionKind
	Event   Event
	Details string
}

// Standalone builds the Added/Deleted action for a single event.
func Standalone(e Event) Action {
	kind := Added
	if e.IsDelete() {
		kind = Deleted
	}
	return Action{Kind: kind, Event: e, Details: e.Path}
}

// Transfer builds the Renamed/Moved action describing from -> to.
func Transfer(representative Event, from, to string) Action {
	return Action{
		Kind:    DetermineMoveOrRename(from, to),
		Event:   representative,
		Details: fmt.Sprintf("%s to %s", from, to),
	}
}

// DetermineMoveOrRename: одинаковый родитель - переименование, иначе перемещение.
func DetermineMoveOrRename(from, to string) ActionKind {
	if ParentPath(from) == ParentPath(to) {
		return Renamed
	}
	return Moved
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s %s", a.Kind, a.Event.FileType(), a.Details)
}
