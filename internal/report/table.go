package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"fsevents/internal/event"
)

// Config содержит настройки для Table
type Config struct {
	Location *time.Location
	Color    bool
}

// Table печатает действия в виде таблицы фиксированной ширины.
type Table struct {
	out      io.Writer
	location *time.Location
	colors   map[event.ActionKind]*color.Color
	err      error
}

func NewTable(out io.Writer, cfg Config) *Table {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	colors := map[event.ActionKind]*color.Color{
		event.Added:   color.New(color.FgGreen),
		event.Deleted: color.New(color.FgRed),
		event.Renamed: color.New(color.FgYellow),
		event.Moved:   color.New(color.FgCyan),
	}
	for _, c := range colors {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Table{
		out:      out,
		location: cfg.Location,
		colors:   colors,
	}
}

func (t *Table) PrintHeader() {
	t.rule()
	t.row("Occurrence", "Event", "Type", "Details", nil)
	t.rule()
}

// Emit печатает строку действия; длинные детали переносятся на
// дополнительные строки с пустыми первыми колонками.
func (t *Table) Emit(action event.Action) {
	chunks := wrap(action.Details, DetailsColumnWidth)

	t.row(t.formatTime(action.Event.Timestamp), action.Kind.String(), action.Event.FileType(), chunks[0], t.colors[action.Kind])
	for _, chunk := range chunks[1:] {
		t.row("", "", "", chunk, nil)
	}
	t.rule()
}

// Err returns the first write error, if any.
func (t *Table) Err() error {
	return t.err
}

func (t *Table) formatTime(timestamp int64) string {
	ts := time.UnixMilli(timestamp).In(t.location)
	return fmt.Sprintf("%s:%03d", ts.Format(TimeLayout), ts.Nanosecond()/int(time.Millisecond))
}

func (t *Table) row(occurrence, action, fileType, details string, actionColor *color.Color) {
	actionCell := pad(action, ActionColumnWidth)
	if actionColor != nil {
		actionCell = actionColor.Sprint(actionCell)
	}

	t.write(fmt.Sprintf("|%s|%s|%s|%s|\n",
		pad(occurrence, TimeColumnWidth),
		actionCell,
		pad(fileType, TypeColumnWidth),
		pad(details, DetailsColumnWidth),
	))
}

func (t *Table) rule() {
	t.write(strings.Repeat("-", RuleWidth) + "\n")
}

func (t *Table) write(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.out, s); err != nil {
		t.err = fmt.Errorf("failed to write report: %w", err)
	}
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// wrap splits s into chunks of at most width runes; always returns at least one chunk.
func wrap(s string, width int) []string {
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}

	chunks := make([]string, 0, len(runes)/width+1)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
