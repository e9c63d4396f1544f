package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDrivesCmd_ArgsValidation(t *testing.T) {
	err := drivesCmd.Args(drivesCmd, []string{"extra"})
	if err == nil {
		t.Fatal("Expected error for unexpected args")
	}
	exitCode := dirmeta.ExitCodeForError(err)
	if exitCode != dirmeta.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", dirmeta.ExitUsageError, exitCode, err)
	}
}

func TestLsCmd_ArgsValidation_TooMany(t *testing.T) {
	err := lsCmd.Args(lsCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
	exitCode := dirmeta.ExitCodeForError(err)
	if exitCode != dirmeta.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", dirmeta.ExitUsageError, exitCode, err)
	}
}

func TestStatCmd_ArgsValidation(t *testing.T) {
	err := statCmd.Args(statCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	exitCode := dirmeta.ExitCodeForError(err)
	if exitCode != dirmeta.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", dirmeta.ExitUsageError, exitCode, err)
	}
}

func TestRunDrives_PrintsMountPoints(t *testing.T) {
	var buf bytes.Buffer
	drivesCmd.SetOut(&buf)

	if err := runDrives(drivesCmd, nil); err != nil {
		t.Fatalf("runDrives: %v", err)
	}
	if strings.TrimSpace(buf.String()) == "" {
		t.Error("expected at least one mount point")
	}
}

func TestRunLs_FoldersFirst(t *testing.T) {
	resetLsFlags()
	tempDir := t.TempDir()
	writeFile(t, tempDir, "a.txt", "hello")
	writeFile(t, tempDir, ".hidden", "x")
	if err := os.Mkdir(filepath.Join(tempDir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)

	if err := runLs(lsCmd, []string{tempDir}); err != nil {
		t.Fatalf("runLs: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "sub" || lines[1] != "a.txt" {
		t.Errorf("expected folders first [sub a.txt], got %v", lines)
	}
}

func TestRunLs_HiddenFlag(t *testing.T) {
	resetLsFlags()
	lsFlags.hidden = true
	tempDir := t.TempDir()
	writeFile(t, tempDir, ".hidden", "x")

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)

	if err := runLs(lsCmd, []string{tempDir}); err != nil {
		t.Fatalf("runLs: %v", err)
	}
	if !strings.Contains(buf.String(), ".hidden") {
		t.Errorf("expected hidden entry in output, got %q", buf.String())
	}
}

func TestRunLs_Long(t *testing.T) {
	resetLsFlags()
	lsFlags.long = true
	tempDir := t.TempDir()
	writeFile(t, tempDir, "a.txt", "hello")

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)

	if err := runLs(lsCmd, []string{tempDir}); err != nil {
		t.Fatalf("runLs: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "a.txt") {
		t.Errorf("expected entry name in output, got %q", output)
	}
	if !strings.Contains(output, "5.00 B") {
		t.Errorf("expected formatted size in output, got %q", output)
	}
	if !strings.Contains(output, ".txt") {
		t.Errorf("expected item type in output, got %q", output)
	}
}

func TestRunLs_FoldersOnlyHeuristic(t *testing.T) {
	resetLsFlags()
	lsFlags.foldersOnly = true
	tempDir := t.TempDir()
	writeFile(t, tempDir, "a.txt", "hello")
	writeFile(t, tempDir, "README", "docs")
	if err := os.Mkdir(filepath.Join(tempDir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)

	if err := runLs(lsCmd, []string{tempDir}); err != nil {
		t.Fatalf("runLs: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "sub") {
		t.Errorf("expected sub in output, got %q", output)
	}
	// Extensionless files count as folders under the naming heuristic.
	if !strings.Contains(output, "README") {
		t.Errorf("expected README in output, got %q", output)
	}
	if strings.Contains(output, "a.txt") {
		t.Errorf("did not expect a.txt in output, got %q", output)
	}
}

func TestRunLs_NonexistentPath(t *testing.T) {
	resetLsFlags()

	err := runLs(lsCmd, []string{"/nonexistent/path/abc123"})
	if err == nil {
		t.Fatal("Expected error for nonexistent path")
	}
	exitCode := dirmeta.ExitCodeForError(err)
	if exitCode != dirmeta.ExitNotADirectory {
		t.Errorf("Expected exit code %d, got %d for: %v", dirmeta.ExitNotADirectory, exitCode, err)
	}
}

func TestRunStat_File(t *testing.T) {
	tempDir := t.TempDir()
	path := writeFile(t, tempDir, "a.txt", "hello")

	var buf bytes.Buffer
	statCmd.SetOut(&buf)

	if err := runStat(statCmd, []string{path}); err != nil {
		t.Fatalf("runStat: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Owner:") {
		t.Errorf("expected owner line, got %q", output)
	}
	if !strings.Contains(output, "File Size:     5.00 B") {
		t.Errorf("expected size line, got %q", output)
	}
	if !strings.Contains(output, "Item:          .txt") {
		t.Errorf("expected item line, got %q", output)
	}
}

func TestRunStat_Directory(t *testing.T) {
	tempDir := t.TempDir()

	var buf bytes.Buffer
	statCmd.SetOut(&buf)

	if err := runStat(statCmd, []string{tempDir}); err != nil {
		t.Fatalf("runStat: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "File Size:") {
		t.Errorf("did not expect size line for a directory, got %q", output)
	}
	if !strings.Contains(output, "Item:          Folder") {
		t.Errorf("expected Folder item, got %q", output)
	}
}

func TestRunStat_NotFound(t *testing.T) {
	err := runStat(statCmd, []string{"/nonexistent/path/abc123"})
	if err == nil {
		t.Fatal("Expected error for nonexistent path")
	}
	exitCode := dirmeta.ExitCodeForError(err)
	if exitCode != dirmeta.ExitNotFound {
		t.Errorf("Expected exit code %d, got %d for: %v", dirmeta.ExitNotFound, exitCode, err)
	}
}

func TestRunBrowse_NonInteractive(t *testing.T) {
	resetBrowseFlags()
	t.Setenv("DIRMETA_NON_INTERACTIVE", "1")

	err := runBrowse(browseCmd, nil)
	if err == nil {
		t.Fatal("Expected error when the terminal is not interactive")
	}
	if !strings.Contains(err.Error(), "interactive") {
		t.Errorf("Expected error about interactivity, got: %v", err)
	}
}
