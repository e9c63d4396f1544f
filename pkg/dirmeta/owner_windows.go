//go:build windows

package dirmeta

import (
	"os"

	"golang.org/x/sys/windows"
)

// windowsOwnerResolver reads the entry's security descriptor, extracts the
// owner SID, and resolves it to an account name.
type windowsOwnerResolver struct {
	logger Logger
}

func newPlatformOwnerResolver(logger Logger) OwnerResolver {
	return &windowsOwnerResolver{logger: logger}
}

func (r *windowsOwnerResolver) Owner(path Path, info os.FileInfo) string {
	descriptor, err := windows.GetNamedSecurityInfo(
		path.String(),
		windows.SE_FILE_OBJECT,
		windows.OWNER_SECURITY_INFORMATION,
	)
	if err != nil {
		r.logger.Error("reading security descriptor for %s: %v", path.String(), err)
		return UnknownOwner
	}

	sid, _, err := descriptor.Owner()
	if err != nil || sid == nil {
		r.logger.Error("extracting owner SID for %s: %v", path.String(), err)
		return UnknownOwner
	}

	account, _, _, err := sid.LookupAccount("")
	if err != nil {
		r.logger.Error("resolving owner SID for %s: %v", path.String(), err)
		return UnknownOwner
	}
	return account
}
