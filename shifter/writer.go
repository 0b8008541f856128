package shifter

import (
	"os"
	"time"
)

// Writer applies a computed timestamp to a file.
type Writer interface {
	SetTimes(path string, t time.Time) error
}

// chtimesWriter sets atime and mtime together in a single utimes call, so a
// concurrent reader never observes one updated without the other. ctime is
// refreshed by the filesystem as a side effect of the metadata write.
type chtimesWriter struct{}

func (chtimesWriter) SetTimes(path string, t time.Time) error {
	return os.Chtimes(path, t, t)
}

// planWriter is the dry-run writer: it leaves the filesystem untouched.
type planWriter struct{}

func (planWriter) SetTimes(string, time.Time) error {
	return nil
}

// NewWriter returns the mutating writer when apply is set, otherwise the
// dry-run writer.
func NewWriter(apply bool) Writer {
	if apply {
		return chtimesWriter{}
	}
	return planWriter{}
}
