package tui

import (
	"os"

	"golang.org/x/term"
)

// nonInteractiveEnv lists environment variables that force the browser off:
// an explicit opt-out, the common CI marker, and the NO_COLOR convention
// (set by users who do not want terminal decoration).
var nonInteractiveEnv = []string{"DIRMETA_NON_INTERACTIVE", "CI", "NO_COLOR"}

// IsInteractive reports whether the full-screen browser can run: no
// opt-out variable is set and both stdin and stdout are terminals. Piped
// input or redirected output disables it, so scripted invocations fall
// back to an error instead of emitting escape sequences.
func IsInteractive() bool {
	for _, name := range nonInteractiveEnv {
		value := os.Getenv(name)
		if name == "DIRMETA_NON_INTERACTIVE" && value != "1" {
			// Only the documented value opts out.
			continue
		}
		if value != "" {
			return false
		}
	}

	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
