package dirmeta

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// fileTypeCache memoizes FileType results by raw path string. It is
// unbounded and lives for the process lifetime; the mutex makes it safe for
// the concurrent callers the CLI and TUI surfaces introduce.
var (
	fileTypeMu    sync.Mutex
	fileTypeCache = make(map[string]string)
)

// FileType reports FolderItem for directories and the filename extension
// otherwise, including the dot (empty string when there is none). Results
// are cached per path for the process lifetime.
func FileType(path Path) string {
	fileTypeMu.Lock()
	defer fileTypeMu.Unlock()

	if cached, ok := fileTypeCache[path.Key()]; ok {
		return cached
	}

	fileType := extensionOf(path.String())
	if info, err := os.Stat(path.String()); err == nil && info.IsDir() {
		fileType = FolderItem
	}

	fileTypeCache[path.Key()] = fileType
	return fileType
}

// extensionOf returns the filename extension including the dot. Leading
// dots belong to the name, so dotfiles like .bashrc have no extension.
func extensionOf(raw string) string {
	base := filepath.Base(raw)
	start := 0
	for start < len(base) && base[start] == '.' {
		start++
	}
	idx := strings.LastIndexByte(base[start:], '.')
	if idx < 0 {
		return ""
	}
	return base[start+idx:]
}
