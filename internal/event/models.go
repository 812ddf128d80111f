package event

import (
	"fmt"
	"path"
	"strings"
)

// Kind - тип низкоуровневой записи трассы
type Kind int

const (
	Create Kind = iota + 1
	Delete
)

func (k Kind) String() string {
	switch k {
	case Create:
		return "add"
	case Delete:
		return "del"
	default:
		return "unknown"
	}
}

// ParseKind разбирает ключевое слово записи без учета регистра.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "add":
		return Create, nil
	case "del":
		return Delete, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Event представляет одно изменение файловой системы из трассы.
// Значения не изменяются после создания.
type Event struct {
	Kind      Kind
	Timestamp int64 // миллисекунды unix-времени
	Path      string
	Signature string
}

func (e Event) IsDirectory() bool {
	return e.Signature == DirectorySignature
}

func (e Event) IsCreate() bool {
	return e.Kind == Create
}

func (e Event) IsDelete() bool {
	return e.Kind == Delete
}

// IsDirectoryDelete reports whether the event removes a directory.
func (e Event) IsDirectoryDelete() bool {
	return e.IsDelete() && e.IsDirectory()
}

// ParentPath returns the path without its final segment ("/" for top-level entries).
func (e Event) ParentPath() string {
	return ParentPath(e.Path)
}

func (e Event) Name() string {
	return path.Base(e.Path)
}

func (e Event) FileType() string {
	if e.IsDirectory() {
		return FileTypeDir
	}
	return FileTypeFile
}

// IsUnderParent проверяет, лежит ли событие внутри директории parent.
func (e Event) IsUnderParent(parent string) bool {
	return IsUnderParent(e.Path, parent)
}

func (e Event) String() string {
	return fmt.Sprintf("%s %d %s %s", e.Kind, e.Timestamp, e.Path, e.Signature)
}
