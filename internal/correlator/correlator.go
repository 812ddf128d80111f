package correlator

import (
	"io"
	"log/slog"

	"fsevents/internal/event"
)

// Correlator восстанавливает семантические операции из потока
// низкоуровневых событий. Хранит не более одной незавершенной группы.
// Не безопасен для конкурентного использования.
type Correlator struct {
	sink         Sink
	logger       *slog.Logger
	pending      *group
	lastResolved *event.Event
	finalized    bool
	stats        Stats
}

func New(sink Sink, cfg Config) (*Correlator, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Correlator{
		sink:   sink,
		logger: cfg.Logger.With(slog.String("component", "correlator")),
	}, nil
}

// Ingest принимает очередное событие в порядке потока.
func (c *Correlator) Ingest(e event.Event) error {
	if c.finalized {
		return ErrFinalized
	}
	c.stats.recordIngested()

	if e.IsDelete() {
		c.ingestDelete(e)
	} else {
		c.ingestCreate(e)
	}
	return nil
}

// Finalize resolves the pending group, if any. Calling it twice is a no-op.
func (c *Correlator) Finalize() error {
	if c.finalized {
		return nil
	}
	c.flush()
	c.finalized = true

	c.logger.Debug("correlator finalized", slog.Any("stats", c.stats.GetStats()))
	return nil
}

func (c *Correlator) Stats() Stats {
	return c.stats
}

func (c *Correlator) ingestDelete(e event.Event) {
	if e.IsDirectory() {
		c.flush()
		c.open(e)
		return
	}

	if c.pending != nil {
		first := c.pending.first()
		if first.IsDirectoryDelete() && first.Path == e.ParentPath() {
			c.pending.append(e)
			return
		}
		c.flush()
	}

	c.startOrSuppress(e)
}

func (c *Correlator) ingestCreate(e event.Event) {
	if c.pending != nil && c.isContinuation(e) {
		c.pending.append(e)
		return
	}

	c.flush()
	c.emitStandalone(e)
}

// startOrSuppress открывает новую группу, если удаление файла не следует
// из уже разрешенного удаления родительской директории.
func (c *Correlator) startOrSuppress(e event.Event) {
	last := c.lastResolved
	if last != nil && last.IsDirectoryDelete() && e.IsUnderParent(last.Path) {
		c.stats.recordSuppressed()
		c.logger.Debug("implied child suppressed",
			slog.String("path", e.Path),
			slog.String("parent", last.Path),
		)
		return
	}
	c.open(e)
}

func (c *Correlator) open(e event.Event) {
	c.pending = newGroup(e)
}

// isContinuation decides whether a create extends the pending group.
func (c *Correlator) isContinuation(e event.Event) bool {
	first := c.pending.first()

	// удаление директории, ее содержимого, затем создание новой директории
	if e.IsDirectory() && first.IsDirectoryDelete() {
		return true
	}

	if !e.IsDirectory() {
		if dir, ok := c.pending.lastDirectory(); ok && dir.Path == e.ParentPath() && c.pending.hasSignature(e.Signature) {
			return true
		}
	}

	return !e.IsDirectory() && !first.IsDirectory() && first.Signature == e.Signature
}

func (c *Correlator) flush() {
	if c.pending == nil {
		return
	}
	g := c.pending
	c.pending = nil
	c.resolve(g)
}

func (c *Correlator) emit(action event.Action, consumed int) {
	c.stats.recordAction(consumed)
	c.sink.Emit(action)
}

func (c *Correlator) emitStandalone(e event.Event) {
	c.emit(event.Standalone(e), 1)
	c.setLastResolved(e)
}

func (c *Correlator) setLastResolved(e event.Event) {
	c.lastResolved = &e
}
