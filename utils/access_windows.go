//go:build windows

package utils

import "os"

// CheckAccess reports whether the current process may read and write dir.
// Windows has no faithful access(2); probe by listing and creating a
// throwaway file.
func CheckAccess(dir string) error {
	if _, err := os.ReadDir(dir); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".retime-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
