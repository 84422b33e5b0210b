// +build !windows,!plan9,!js

package ore

import "golang.org/x/sys/unix"

// StatBootloader reports whether path exists and is readable. The bootstrap
// contract treats a missing bootloader as "no bootloader configured," not an
// error; any other stat failure (permissions, a directory in the way) is
// reported so the launcher can fail loudly instead of silently skipping a
// bootloader that is present but broken.
func StatBootloader(path string) (exists bool, err error) {
	err = unix.Access(path, unix.R_OK)
	if err == unix.ENOENT {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
