package reader

import (
	"fmt"
	"strconv"
	"strings"

	"fsevents/internal/event"
)

// ParseLine разбирает строку вида "<add|del> <timestamp> <path> <signature>".
func ParseLine(text string) (event.Event, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldCount {
		return event.Event{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	kind, err := event.ParseKind(fields[0])
	if err != nil {
		return event.Event{}, err
	}

	timestamp, err := parseTimestamp(fields[1])
	if err != nil {
		return event.Event{}, err
	}

	if err := validatePath(fields[2]); err != nil {
		return event.Event{}, err
	}

	if err := validateSignature(fields[3]); err != nil {
		return event.Event{}, err
	}

	return event.Event{
		Kind:      kind,
		Timestamp: timestamp,
		Path:      fields[2],
		Signature: fields[3],
	}, nil
}

func parseTimestamp(s string) (int64, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
		}
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	return ts, nil
}

// validatePath requires "/" followed by non-empty segments free of reserved characters.
func validatePath(p string) error {
	if !strings.HasPrefix(p, event.PathSeparator) || len(p) == 1 {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidPath, p)
	}
	if strings.ContainsAny(p, ReservedPathChars) {
		return fmt.Errorf("%w: %q contains reserved characters", ErrInvalidPath, p)
	}
	for _, segment := range strings.Split(p[1:], event.PathSeparator) {
		if segment == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, p)
		}
	}
	return nil
}

func validateSignature(s string) error {
	if s == event.DirectorySignature {
		return nil
	}
	if len(s) != event.SignatureLength {
		return fmt.Errorf("%w: %q", ErrInvalidSignature, s)
	}
	for _, r := range s {
		if !isAlphanumeric(r) {
			return fmt.Errorf("%w: %q", ErrInvalidSignature, s)
		}
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
