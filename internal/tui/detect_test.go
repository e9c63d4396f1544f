package tui

import (
	"testing"
)

func clearDetectEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DIRMETA_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
}

func TestIsInteractive_OptOutVariable(t *testing.T) {
	clearDetectEnv(t)
	t.Setenv("DIRMETA_NON_INTERACTIVE", "1")

	if IsInteractive() {
		t.Error("IsInteractive() = true with DIRMETA_NON_INTERACTIVE=1")
	}
}

func TestIsInteractive_CI(t *testing.T) {
	clearDetectEnv(t)
	t.Setenv("CI", "true")

	if IsInteractive() {
		t.Error("IsInteractive() = true with CI set")
	}
}

func TestIsInteractive_NoColor(t *testing.T) {
	clearDetectEnv(t)
	t.Setenv("NO_COLOR", "1")

	if IsInteractive() {
		t.Error("IsInteractive() = true with NO_COLOR set")
	}
}

func TestIsInteractive_NoTerminal(t *testing.T) {
	// In test context, stdin/stdout are not terminals.
	clearDetectEnv(t)

	if IsInteractive() {
		t.Error("IsInteractive() = true without a terminal")
	}
}

func TestIsInteractive_WrongOptOutValue(t *testing.T) {
	// Only "1" opts out, not "true" or "yes"; the terminal check still
	// applies and returns false in tests.
	clearDetectEnv(t)
	t.Setenv("DIRMETA_NON_INTERACTIVE", "true")

	if IsInteractive() {
		t.Error("IsInteractive() = true without a terminal")
	}
}
