package dirmeta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

// populateDir writes a known mix of entries into a fresh temp directory.
func populateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "projects"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Archive"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Backup.tar.gz"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("r"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("h"), 0644))
	return dir
}

func TestFolders_NamingHeuristic(t *testing.T) {
	dir := populateDir(t)

	folders, err := dirmeta.Folders(dirmeta.New(dir))
	require.NoError(t, err)

	names := make([]string, len(folders))
	for i, folder := range folders {
		names[i] = folder.String()
	}

	parent := dirmeta.New(dir)
	// Real directories and dotfiles qualify.
	assert.Contains(t, names, parent.JoinString("projects").String())
	assert.Contains(t, names, parent.JoinString("Archive").String())
	assert.Contains(t, names, parent.JoinString(".hidden").String())
	// An extensionless file passes the heuristic even though it is a file.
	assert.Contains(t, names, parent.JoinString("README").String())
	// Names with extensions do not qualify.
	assert.NotContains(t, names, parent.JoinString("notes.txt").String())
	assert.NotContains(t, names, parent.JoinString("Backup.tar.gz").String())
}

func TestFolders_NotFound(t *testing.T) {
	_, err := dirmeta.Folders(dirmeta.New(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, dirmeta.ErrNotFound)
}

func TestFolders_EmptyPathListsDrives(t *testing.T) {
	drives, err := dirmeta.Drives()
	require.NoError(t, err)

	folders, err := dirmeta.Folders(dirmeta.New(""))
	require.NoError(t, err)

	assert.Equal(t, drives, folders)
}

func TestFilesFolders_Partition(t *testing.T) {
	dir := populateDir(t)

	files, folders, err := dirmeta.FilesFolders(dirmeta.New(dir))
	require.NoError(t, err)

	fileNames := make([]string, len(files))
	for i, file := range files {
		fileNames[i] = file.String()
	}
	folderNames := make([]string, len(folders))
	for i, folder := range folders {
		folderNames[i] = folder.String()
	}

	// The partition is stat-backed: README is a file here, unlike Folders.
	assert.Equal(t, []string{".hidden", "Backup.tar.gz", "notes.txt", "README"}, fileNames)
	assert.Equal(t, []string{"Archive", "projects"}, folderNames)
}

func TestFilesFolders_SortedCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"delta.txt", "Alpha.txt", "charlie.txt", "Bravo.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, _, err := dirmeta.FilesFolders(dirmeta.New(dir))
	require.NoError(t, err)

	got := make([]string, len(files))
	for i, file := range files {
		got[i] = file.String()
	}
	assert.Equal(t, []string{"Alpha.txt", "Bravo.txt", "charlie.txt", "delta.txt"}, got)
}

func TestFilesFolders_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0644))

	_, _, err := dirmeta.FilesFolders(dirmeta.New(file))
	assert.ErrorIs(t, err, dirmeta.ErrNotADirectory)
}
