//go:build !windows

package run

import (
	"os"
	"syscall"
)

// ownedByCurrentUser reports whether the file at path belongs to the
// effective uid of this process. Overridable in tests.
var ownedByCurrentUser = func(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		// No ownership information available; treat the file as ours.
		return true, nil
	}
	return int(stat.Uid) == os.Geteuid(), nil
}
