package event

import (
	"path"
	"strings"
)

// ParentPath returns p minus its final segment.
func ParentPath(p string) string {
	return path.Dir(p)
}

// Segments splits a slash-delimited path, skipping empty segments.
func Segments(p string) []string {
	parts := strings.Split(p, PathSeparator)
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// IsUnderParent сравнивает пути посегментно, а не как строковый префикс:
// "/ab" не лежит внутри "/a".
func IsUnderParent(child, parent string) bool {
	if len(child) <= len(parent) {
		return false
	}

	parentSegments := Segments(parent)
	childSegments := Segments(child)
	if len(parentSegments) == 0 || len(childSegments) < len(parentSegments) {
		return false
	}

	for i, segment := range parentSegments {
		if childSegments[i] != segment {
			return false
		}
	}
	return true
}

// Rebase заменяет префикс oldDir на newDir. Второе значение false,
// если p не лежит внутри oldDir.
func Rebase(p, oldDir, newDir string) (string, bool) {
	if !IsUnderParent(p, oldDir) {
		return "", false
	}
	rest := strings.TrimPrefix(p, strings.TrimSuffix(oldDir, PathSeparator))
	if !strings.HasPrefix(rest, PathSeparator) {
		return "", false
	}
	return strings.TrimSuffix(newDir, PathSeparator) + rest, true
}
