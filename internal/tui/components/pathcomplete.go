package components

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

// PathCompleter provides tab-completion and cycling for directory paths in
// the go-to input. It tracks state across Tab presses to cycle through
// matches.
//
// Usage:
//
//	completer := NewPathCompleter(false) // hidden entries excluded
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	matches    []string
	cycleIndex int
	lastInput  string
	showHidden bool
}

// NewPathCompleter creates a new path completer. Only directories are
// matched; dotted entries are skipped unless showHidden is true.
func NewPathCompleter(showHidden bool) *PathCompleter {
	return &PathCompleter{showHidden: showHidden}
}

// SetShowHidden toggles completion of hidden directories.
func (c *PathCompleter) SetShowHidden(show bool) {
	c.showHidden = show
	c.Reset()
}

// Next returns the next completion for the given input.
// On first call (or after input changes), it computes matches.
// On subsequent calls with the same base input, it cycles through matches.
func (c *PathCompleter) Next(input string) string {
	parent, prefix := splitPath(input)

	// If the input changed from what we're cycling through, recompute
	if parent != c.lastInput || c.matches == nil {
		c.matches = c.findMatches(parent, prefix)
		c.cycleIndex = 0
		c.lastInput = parent

		if len(c.matches) == 0 {
			return input
		}

		// First Tab: if there's a unique common prefix longer than input, complete it
		if len(c.matches) > 1 {
			common := longestCommonPrefix(c.matches)
			candidate := filepath.Join(parent, common)
			if len(candidate) > len(input) {
				return candidate
			}
		}

		// Single match or common prefix exhausted — return first match
		return c.formatMatch(parent, c.matches[c.cycleIndex])
	}

	// Same parent — cycle to next match
	if len(c.matches) == 0 {
		return input
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return c.formatMatch(parent, c.matches[c.cycleIndex])
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastInput = ""
}

func (c *PathCompleter) findMatches(parent, prefix string) []string {
	if parent == "" {
		parent = "."
	}

	lowPrefix := strings.ToLower(prefix)

	var matches []dirmeta.Path
	for _, item := range dirmeta.New(parent).ListItems() {
		name := item.String()
		if !c.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			continue
		}
		if info, err := os.Stat(filepath.Join(parent, name)); err != nil || !info.IsDir() {
			continue
		}
		matches = append(matches, item)
	}

	dirmeta.SortPaths(matches)

	names := make([]string, len(matches))
	for i, match := range matches {
		names[i] = match.String()
	}
	return names
}

func (c *PathCompleter) formatMatch(parent, name string) string {
	// All matches are directories — add the trailing separator eagerly.
	return filepath.Join(parent, name) + string(filepath.Separator)
}

// splitPath splits an input into parent directory and name prefix.
//
//	"./src/com" → ("./src", "com")
//	"./src/"    → ("./src", "")
//	"my"        → (".", "my")
//	""          → (".", "")
//	"."         → (".", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}

	if strings.HasSuffix(input, string(filepath.Separator)) || strings.HasSuffix(input, "/") {
		trimmed := strings.TrimRight(input, `/\`)
		if trimmed == "" {
			// The input was the root itself.
			trimmed = string(filepath.Separator)
		}
		return trimmed, ""
	}

	parent = filepath.Dir(input)
	prefix = filepath.Base(input)
	return parent, prefix
}

// longestCommonPrefix finds the longest common prefix among strings (case-insensitive).
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	lowered := make([]string, len(strs))
	for i, s := range strs {
		lowered[i] = strings.ToLower(s)
	}

	first := lowered[0]
	rest := lowered[1:]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range rest {
			if i >= len(s) || s[i] != ch {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}
