package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fsevents/internal/correlator"
	"fsevents/internal/reader"
	"fsevents/internal/util/logger/sl"
)

// Config содержит настройки для Run
type Config struct {
	Logger *slog.Logger
}

// Summary describes one pass over a trace.
type Summary struct {
	Accepted   int
	Rejections []reader.Rejection
	Stats      correlator.Stats
	// ReadErr - ошибка ввода, после которой обработка продолжилась с прочитанными событиями
	ReadErr error
}

// Run читает трассу из in, прогоняет события через коррелятор и отдает
// действия в sink. Ошибка ввода не прерывает разбор: уже прочитанные
// события разрешаются, а ошибка попадает в Summary.ReadErr.
func Run(in io.Reader, sink correlator.Sink, cfg Config) (Summary, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log := cfg.Logger

	c, err := correlator.New(sink, correlator.Config{Logger: log})
	if err != nil {
		return Summary{}, err
	}

	r := reader.NewReader(in, reader.Config{Logger: log})
	var summary Summary

	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error("trace read failed, continuing with events read so far", sl.Err(err))
			summary.ReadErr = err
			break
		}

		if err := c.Ingest(e); err != nil {
			return summary, fmt.Errorf("failed to ingest event: %w", err)
		}
		summary.Accepted++
	}

	if err := c.Finalize(); err != nil {
		return summary, fmt.Errorf("failed to finalize: %w", err)
	}

	summary.Rejections = r.Rejections()
	summary.Stats = c.Stats()

	log.Debug("trace interpreted",
		slog.Int("accepted", summary.Accepted),
		slog.Int("rejected", len(summary.Rejections)),
		slog.Any("stats", summary.Stats.GetStats()),
	)
	return summary, nil
}
