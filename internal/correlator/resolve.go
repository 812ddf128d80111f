package correlator

import (
	"log/slog"

	"fsevents/internal/event"
)

// resolve классифицирует группу и выпускает итоговые действия.
func (c *Correlator) resolve(g *group) {
	c.stats.recordGroup()

	if g.size() == 1 {
		c.emitStandalone(g.first())
		return
	}

	if tx, ok := directoryTransaction(g); ok {
		c.logger.Debug("directory transaction",
			slog.String("from", tx.oldDir.Path),
			slog.String("to", tx.newDir.Path),
			slog.Int("leftovers", len(tx.leftovers)),
		)
		c.emit(event.Transfer(tx.oldDir, tx.oldDir.Path, tx.newDir.Path), g.size()-len(tx.leftovers))
		for _, left := range tx.leftovers {
			c.emit(event.Standalone(left), 1)
		}
		c.setLastResolved(tx.oldDir)
		return
	}

	if isFileTransaction(g) {
		from, to := g.events[0], g.events[1]
		c.logger.Debug("file transaction", slog.String("from", from.Path), slog.String("to", to.Path))
		c.emit(event.Transfer(from, from.Path, to.Path), 2)
		c.setLastResolved(from)
		return
	}

	c.logger.Debug("mixed group replayed", slog.Int("size", g.size()))
	c.replay(g)
}

// replay emits each event on its own, skipping a deletion whose parent is
// the directory deletion reported just before it. Only the immediately
// preceding reported event is checked, not the full ancestry.
func (c *Correlator) replay(g *group) {
	var previous *event.Event
	for i := range g.events {
		e := g.events[i]
		if e.IsDelete() && previous != nil && previous.IsDirectoryDelete() && previous.Path == e.ParentPath() {
			c.stats.recordSuppressed()
			continue
		}
		c.emitStandalone(e)
		previous = &g.events[i]
	}
}

func isFileTransaction(g *group) bool {
	if g.size() != 2 {
		return false
	}
	first, second := g.events[0], g.events[1]
	return !first.IsDirectory() && second.IsCreate() && second.Signature == first.Signature
}

type dirTransaction struct {
	oldDir    event.Event
	newDir    event.Event
	leftovers []event.Event
}

// directoryTransaction проверяет, описывает ли группа перенос директории
// вместе с содержимым. Каждое создание должно погасить удаление с тем же
// отпечатком, а пути файлов - совпасть после замены префикса oldDir на newDir.
func directoryTransaction(g *group) (dirTransaction, bool) {
	var tx dirTransaction
	var haveOld, haveNew bool
	deletions := newDeletionIndex()

	for _, e := range g.events {
		if e.IsDelete() {
			if e.IsDirectory() {
				tx.oldDir = e
				haveOld = true
			}
			deletions.push(e)
			continue
		}

		deleted, ok := deletions.pop(e.Signature)
		if !ok {
			return dirTransaction{}, false
		}

		if e.IsDirectory() {
			tx.newDir = e
			haveNew = true
			continue
		}

		if !haveOld || !haveNew {
			return dirTransaction{}, false
		}
		rebased, ok := event.Rebase(deleted.Path, tx.oldDir.Path, tx.newDir.Path)
		if !ok || rebased != e.Path {
			return dirTransaction{}, false
		}
	}

	if !haveOld || !haveNew {
		return dirTransaction{}, false
	}

	tx.leftovers = deletions.remaining()
	return tx, true
}

// deletionIndex - очередь удалений по отпечатку; сохраняет исходный порядок
// для отчета о непогашенных удалениях.
type deletionIndex struct {
	order    []event.Event
	consumed []bool
	bySig    map[string][]int
}

func newDeletionIndex() *deletionIndex {
	return &deletionIndex{bySig: make(map[string][]int)}
}

func (d *deletionIndex) push(e event.Event) {
	d.bySig[e.Signature] = append(d.bySig[e.Signature], len(d.order))
	d.order = append(d.order, e)
	d.consumed = append(d.consumed, false)
}

func (d *deletionIndex) pop(signature string) (event.Event, bool) {
	queue := d.bySig[signature]
	if len(queue) == 0 {
		return event.Event{}, false
	}
	idx := queue[0]
	d.bySig[signature] = queue[1:]
	d.consumed[idx] = true
	return d.order[idx], true
}

func (d *deletionIndex) remaining() []event.Event {
	var left []event.Event
	for i, e := range d.order {
		if !d.consumed[i] {
			left = append(left, e)
		}
	}
	return left
}
