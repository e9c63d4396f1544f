package dirmeta

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FixPath normalizes a raw path into a canonical absolute directory form:
// on Windows a backslash is inserted after a bare drive-letter colon, on
// Unix a missing root prefix is added, a trailing separator is ensured,
// and the result is canonicalized (absolute, symlinks and dot segments
// resolved). The empty path and the bare separator pass through untouched.
//
// Fails with ErrNotADirectory when the adjusted path is not a valid
// directory. FixPath is idempotent for any valid directory.
func FixPath(path Path) (Path, error) {
	isWindows := DetectFamily() == FamilyWindows

	if isWindows {
		path = New(insertDriveSeparator(path.String()))
	} else if !path.StartsWith("/") && path.String() != "" && path.String() != "/" {
		path = New("/").Join(path)
	}

	if !path.ValidDir() {
		return Path{}, fmt.Errorf("%w: %q is not a directory", ErrNotADirectory, path.String())
	}

	if isWindows && !path.EndsWith(`\`) && path.String() != "" {
		path = path.Join(New(`\`))
	}
	if !isWindows && !path.EndsWith("/") && path.String() != "/" && path.String() != "" {
		path = path.Join(New("/"))
	}

	if raw := path.String(); raw != "" && raw != "/" && raw != `\` {
		path = New(realPath(raw))
	}

	return path, nil
}

// realPath makes the path absolute and resolves symlinks and dot
// segments, mirroring realpath(3)'s non-strict behavior: resolution
// failures fall back to the cleaned absolute path.
func realPath(raw string) string {
	abs, err := filepath.Abs(raw)
	if err != nil {
		return filepath.Clean(raw)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// insertDriveSeparator ensures a backslash immediately follows every
// drive-letter colon, so "C:" becomes `C:\` and "C:dir" becomes `C:\dir`.
func insertDriveSeparator(raw string) string {
	var builder strings.Builder
	for i := 0; i < len(raw); i++ {
		builder.WriteByte(raw[i])
		if raw[i] == ':' && (i+1 >= len(raw) || raw[i+1] != '\\') {
			builder.WriteByte('\\')
		}
	}
	return builder.String()
}
