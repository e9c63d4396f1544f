package dirmeta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Metadata describes a single filesystem entry. FileSize is empty for
// directories; Item holds the filename extension or FolderItem.
//
// When collection fails, only Err is set and every other field is zero.
// Callers must check Failed() before using the record.
type Metadata struct {
	Path         Path
	Owner        string
	LastModified time.Time
	FileSize     string
	Item         string
	Err          string
}

// Failed reports whether the record carries an error instead of metadata.
func (m Metadata) Failed() bool {
	return m.Err != ""
}

// Collector retrieves metadata records for filesystem entries. The owner
// resolution strategy is selected once, at construction, from the detected
// OS family.
type Collector struct {
	resolver OwnerResolver
	logger   Logger
}

// NewCollector creates a metadata collector. A nil logger disables
// logging.
func NewCollector(logger Logger) *Collector {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Collector{
		resolver: newPlatformOwnerResolver(logger),
		logger:   logger,
	}
}

// NewCollectorWithResolver creates a collector with an explicit owner
// resolver. Intended for tests and callers with custom resolution needs.
func NewCollectorWithResolver(resolver OwnerResolver, logger Logger) *Collector {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Collector{resolver: resolver, logger: logger}
}

// FileMetadata retrieves the metadata record for a file or folder. It
// never fails with an error: a missing entry yields a record whose Err
// field reads "File not found: ...", and any other stat or lookup failure
// yields a record carrying the failure text.
func (c *Collector) FileMetadata(path Path) Metadata {
	info, err := os.Stat(path.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Metadata{Err: fmt.Sprintf("File not found: %q", path.String())}
		}
		return Metadata{Err: err.Error()}
	}

	metadata := Metadata{
		Path:         path,
		Owner:        c.resolver.Owner(path, info),
		LastModified: info.ModTime(),
		Item:         FileType(path),
	}
	if !info.IsDir() {
		metadata.FileSize = FormatSize(float64(info.Size()))
	}
	return metadata
}
