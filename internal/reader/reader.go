package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"fsevents/internal/event"
)

// Reader выдает проверенные события трассы в порядке поступления.
// Первая строка задает число записей N; каждая из следующих N строк
// учитывается в N, даже если отброшена.
type Reader struct {
	scanner    *bufio.Scanner
	logger     *slog.Logger
	line       int
	remaining  int
	started    bool
	last       *event.Event
	rejections []Rejection
}

func NewReader(r io.Reader, cfg Config) *Reader {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)

	return &Reader{
		scanner: scanner,
		logger:  cfg.Logger.With(slog.String("component", "reader")),
	}
}

// Next returns the next accepted event, io.EOF once the declared records
// are exhausted, or an ErrRead-wrapped error on I/O failure.
func (r *Reader) Next() (event.Event, error) {
	if !r.started {
		r.started = true
		if err := r.readCount(); err != nil {
			return event.Event{}, err
		}
	}

	for r.remaining > 0 {
		text, err := r.readLine()
		if err != nil {
			return event.Event{}, err
		}
		r.remaining--

		e, err := ParseLine(text)
		if err != nil {
			r.reject(text, err)
			continue
		}

		if r.last != nil && e.Timestamp < r.last.Timestamp {
			r.reject(text, fmt.Errorf("%w: %d < %d", ErrNotChronological, e.Timestamp, r.last.Timestamp))
			continue
		}

		r.last = &e
		return e, nil
	}

	return event.Event{}, io.EOF
}

// ReadAll читает все события. При ошибке ввода возвращает уже прочитанные
// события вместе с ошибкой.
func (r *Reader) ReadAll() ([]event.Event, error) {
	var events []event.Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, e)
	}
}

// Rejections returns the dropped lines in input order.
func (r *Reader) Rejections() []Rejection {
	return r.rejections
}

func (r *Reader) readCount() error {
	text, err := r.readLine()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		r.reject(text, fmt.Errorf("%w: %q", ErrInvalidCount, text))
		return nil
	}
	r.remaining = n
	return nil
}

// readLine возвращает io.EOF при досрочном конце ввода.
func (r *Reader) readLine() (string, error) {
	if !r.scanner.Scan() {
		r.remaining = 0
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w at line %d: %w", ErrRead, r.line+1, err)
		}
		return "", io.EOF
	}
	r.line++
	return r.scanner.Text(), nil
}

func (r *Reader) reject(text string, err error) {
	r.rejections = append(r.rejections, Rejection{Line: r.line, Text: text, Err: err})
	r.logger.Debug("line dropped",
		slog.Int("line", r.line),
		slog.String("reason", err.Error()),
	)
}
