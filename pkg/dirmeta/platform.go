package dirmeta

import "runtime"

// Family identifies the OS family the process is running on. It decides the
// path separator and which owner-resolution strategy is used.
type Family int

const (
	// FamilyUnix covers Linux, the BSDs, and macOS.
	FamilyUnix Family = iota
	// FamilyWindows covers Windows.
	FamilyWindows
)

// DetectFamily returns the OS family of the current process.
func DetectFamily() Family {
	if runtime.GOOS == "windows" {
		return FamilyWindows
	}
	return FamilyUnix
}

// Separator returns the path separator character for the family.
func (f Family) Separator() string {
	if f == FamilyWindows {
		return `\`
	}
	return "/"
}

// String returns a human-readable family name.
func (f Family) String() string {
	if f == FamilyWindows {
		return "windows"
	}
	return "unix"
}
