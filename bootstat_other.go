// +build windows plan9 js

package ore

import "os"

// StatBootloader is the non-unix fallback: x/sys does not expose a uniform
// access check across windows/plan9/js, so these platforms fall back to
// os.Stat, losing only the distinction between "unreadable" and "some other
// stat error," which the bootstrap contract does not depend on.
func StatBootloader(path string) (exists bool, err error) {
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
