package dirmeta

import "os"

// OwnerResolver resolves the owning account name of a filesystem entry.
// Resolution failures are reported as UnknownOwner, never as an error.
//
// The platform implementation is chosen once per Collector: a Windows
// security-descriptor lookup, or a Unix user-database lookup by UID.
type OwnerResolver interface {
	Owner(path Path, info os.FileInfo) string
}
