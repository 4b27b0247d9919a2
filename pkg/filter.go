package assethashmap

import (
	"path/filepath"
	"strings"
)

// Extension returns the suffix used for include/exclude filtering.
// One leading dot is dropped first so ".config.json" yields "json";
// a name with no remaining dot is its own extension ("Makefile" yields "Makefile").
func Extension(name string) string {
	base := filepath.Base(name)
	base = strings.TrimPrefix(base, ".")
	if idx := strings.LastIndex(base, "."); idx != -1 {
		return base[idx+1:]
	}
	return base
}

// IsHidden reports whether the base name starts with a dot
func IsHidden(name string) bool {
	return strings.HasPrefix(filepath.Base(name), ".")
}

type extensionSet map[string]struct{}

func newExtensionSet(exts []string) extensionSet {
	if len(exts) == 0 {
		return nil
	}
	set := make(extensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func (s extensionSet) contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Filter decides which traversal entries are hashed
type Filter struct {
	include   extensionSet
	exclude   extensionSet
	allowHide bool
}

// NewFilter builds a filter. Empty include or exclude lists disable that rule.
func NewFilter(include, exclude []string, includeHidden bool) *Filter {
	return &Filter{
		include:   newExtensionSet(include),
		exclude:   newExtensionSet(exclude),
		allowHide: includeHidden,
	}
}

// Reject returns the reason an entry is skipped, or "" when it is accepted.
// Rules are checked in order: directory, hidden, excluded, not included.
func (f *Filter) Reject(entry Entry) string {
	if entry.IsDir {
		return "directory"
	}
	if !f.allowHide && IsHidden(entry.Path) {
		return "hidden"
	}
	ext := Extension(entry.Path)
	if f.exclude != nil && f.exclude.contains(ext) {
		return "excluded extension " + ext
	}
	if f.include != nil && !f.include.contains(ext) {
		return "extension " + ext + " not included"
	}
	return ""
}

// Accept reports whether an entry should be hashed
func (f *Filter) Accept(entry Entry) bool {
	reason := f.Reject(entry)
	if reason != "" && !entry.IsDir {
		DebugLog(DebugFilter, "skip %s: %s", entry.Path, reason)
	}
	return reason == ""
}
