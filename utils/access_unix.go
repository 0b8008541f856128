//go:build !windows

package utils

import "golang.org/x/sys/unix"

// CheckAccess reports whether the current process may read and write dir.
func CheckAccess(dir string) error {
	return unix.Access(dir, unix.R_OK|unix.W_OK)
}
