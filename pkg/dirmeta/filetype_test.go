package dirmeta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

func TestFileType_Extensions(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		want string
	}{
		{"report.txt", ".txt"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		// Leading dots belong to the name, not an extension.
		{".bashrc", ""},
		{".config.yaml", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

			if got := dirmeta.FileType(dirmeta.New(file)); got != tt.want {
				t.Errorf("FileType(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestFileType_Directory(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dirmeta.FolderItem, dirmeta.FileType(dirmeta.New(dir)))
}

func TestFileType_Memoized(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "data")
	require.NoError(t, os.Mkdir(dir, 0755))

	path := dirmeta.New(dir)
	first := dirmeta.FileType(path)
	require.Equal(t, dirmeta.FolderItem, first)

	// Remove the directory: the cached answer must survive, since the memo
	// is keyed by path value and never invalidated.
	require.NoError(t, os.Remove(dir))
	assert.Equal(t, first, dirmeta.FileType(path))
}
