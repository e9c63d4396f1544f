package dirmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitNotFound      = 20 // Target path does not exist
	ExitNotADirectory = 21 // Target path is not a directory
	ExitTypeMismatch  = 22 // Path compared against an unsupported type
)

const (
	// FolderItem is the item type reported for directories in place of a
	// filename extension.
	FolderItem = "Folder"

	// UnknownOwner is reported when the owning account of an entry cannot
	// be resolved. Owner-resolution failures are never propagated.
	UnknownOwner = "Unknown Owner"
)
