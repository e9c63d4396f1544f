//go:build !windows

package dirmeta

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
)

// unixOwnerResolver maps the numeric UID from stat info to a user name via
// the system account database.
type unixOwnerResolver struct {
	logger Logger
}

func newPlatformOwnerResolver(logger Logger) OwnerResolver {
	return &unixOwnerResolver{logger: logger}
}

func (r *unixOwnerResolver) Owner(path Path, info os.FileInfo) string {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return UnknownOwner
	}
	account, err := user.LookupId(strconv.FormatUint(uint64(stat.Uid), 10))
	if err != nil {
		r.logger.Verbose("no account for uid %d (%s): %v", stat.Uid, path.String(), err)
		return UnknownOwner
	}
	return account.Username
}
