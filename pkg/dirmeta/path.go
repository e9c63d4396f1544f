package dirmeta

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Path is a value type wrapping a separator-joined path string. The
// separator is chosen from the detected OS family at construction time.
// Path is comparable and can be used directly as a map or set key.
type Path struct {
	raw string
	sep string
}

// New creates a Path from a raw string.
func New(raw string) Path {
	return Path{raw: raw, sep: DetectFamily().Separator()}
}

// FromSegments creates a Path by joining the given segments with the
// platform separator. Empty segments are dropped.
func FromSegments(segments []string) Path {
	sep := DetectFamily().Separator()
	return joinRaw(sep, segments...)
}

func joinRaw(sep string, parts ...string) Path {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		kept = append(kept, part)
	}
	return Path{raw: strings.Join(kept, sep), sep: sep}
}

// String returns the raw path string.
func (p Path) String() string {
	return p.raw
}

// Key returns the raw string for explicit use as a map key.
func (p Path) Key() string {
	return p.raw
}

// Separator returns the separator the path was constructed with.
func (p Path) Separator() string {
	return p.sep
}

// Set replaces the underlying path string, keeping the separator.
func (p *Path) Set(raw string) {
	p.raw = raw
}

// Segments splits the path into its ordered non-empty segments. Each
// segment is trimmed of surrounding whitespace.
func (p Path) Segments() []string {
	var segments []string
	for _, segment := range strings.Split(p.raw, p.sep) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.Segments())
}

// Contains reports whether the given segment appears in the path.
func (p Path) Contains(segment string) bool {
	for _, s := range p.Segments() {
		if s == segment {
			return true
		}
	}
	return false
}

// operandRaw extracts the raw string of a Path-or-string operand.
func operandRaw(other any) (string, bool) {
	switch v := other.(type) {
	case Path:
		return v.raw, true
	case string:
		return v, true
	}
	return "", false
}

// StartsWith reports whether the raw path string starts with the given
// Path or string. Unsupported operand types never match.
func (p Path) StartsWith(other any) bool {
	raw, ok := operandRaw(other)
	return ok && strings.HasPrefix(p.raw, raw)
}

// EndsWith reports whether the raw path string ends with the given Path or
// string. Unsupported operand types never match.
func (p Path) EndsWith(other any) bool {
	raw, ok := operandRaw(other)
	return ok && strings.HasSuffix(p.raw, raw)
}

// Equals reports whether the path equals the given Path or string. Any
// other operand type fails with ErrTypeMismatch.
func (p Path) Equals(other any) (bool, error) {
	raw, ok := operandRaw(other)
	if !ok {
		return false, fmt.Errorf("%w: can only compare a Path with a string or a Path, got %T", ErrTypeMismatch, other)
	}
	return p.raw == raw, nil
}

// NotEquals is the negation of Equals, with the same operand rules.
func (p Path) NotEquals(other any) (bool, error) {
	equal, err := p.Equals(other)
	if err != nil {
		return false, err
	}
	return !equal, nil
}

// Less reports whether p orders before other, comparing the raw strings
// case-insensitively.
func (p Path) Less(other Path) bool {
	return strings.ToLower(p.raw) < strings.ToLower(other.raw)
}

// LessEq reports whether p orders before or equal to other.
func (p Path) LessEq(other Path) bool {
	return strings.ToLower(p.raw) <= strings.ToLower(other.raw)
}

// Greater reports whether p orders after other.
func (p Path) Greater(other Path) bool {
	return strings.ToLower(p.raw) > strings.ToLower(other.raw)
}

// GreaterEq reports whether p orders after or equal to other.
func (p Path) GreaterEq(other Path) bool {
	return strings.ToLower(p.raw) >= strings.ToLower(other.raw)
}

// Join concatenates two paths using the left operand's separator. Empty
// operands are dropped rather than producing empty segments.
func (p Path) Join(other Path) Path {
	return joinRaw(p.sep, p.raw, other.raw)
}

// JoinString concatenates a raw string onto the path.
func (p Path) JoinString(s string) Path {
	return joinRaw(p.sep, p.raw, s)
}

// Split splits the raw path string on an arbitrary separator, wrapping
// every fragment as a Path.
func (p Path) Split(sep string) []Path {
	fragments := strings.Split(p.raw, sep)
	paths := make([]Path, len(fragments))
	for i, fragment := range fragments {
		paths[i] = New(fragment)
	}
	return paths
}

// ValidDir reports whether the OS considers the path an existing
// directory. The empty path and the bare separator are treated as the
// filesystem root and are always valid.
func (p Path) ValidDir() bool {
	if p.raw == "" || p.raw == p.sep {
		return true
	}
	info, err := os.Stat(p.raw)
	return err == nil && info.IsDir()
}

// ValidFile reports whether the OS considers the path an existing regular
// file. The empty path and the bare separator are always valid.
func (p Path) ValidFile() bool {
	if p.raw == "" || p.raw == p.sep {
		return true
	}
	info, err := os.Stat(p.raw)
	return err == nil && info.Mode().IsRegular()
}

// ListItems lists the names of the path's immediate children. An empty
// path lists the drive roots instead. An invalid directory, or one that
// cannot be read, yields an empty result.
func (p Path) ListItems() []Path {
	if p.raw == "" {
		drives, err := Drives()
		if err != nil {
			return nil
		}
		return drives
	}
	if !p.ValidDir() {
		return nil
	}
	entries, err := os.ReadDir(p.raw)
	if err != nil {
		return nil
	}
	items := make([]Path, 0, len(entries))
	for _, entry := range entries {
		items = append(items, New(entry.Name()))
	}
	return items
}

// SortPaths sorts paths in place using the case-insensitive Path ordering.
func SortPaths(paths []Path) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Less(paths[j])
	})
}
