package shifter

import (
	"time"

	"github.com/djherbis/times"
)

// FileRecord holds the per-file timestamp metadata one traversal step
// operates on. Records are built fresh per file and discarded after it is
// processed; nothing accumulates across the run.
type FileRecord struct {
	Path       string
	MtimeEpoch float64
	CtimeEpoch float64
	MaxEpoch   float64
	MaxTime    time.Time

	// Date-only projections, used for reporting.
	MtimeDate string
	CtimeDate string
	MaxDate   string
}

// BuildRecord stats path and derives the timestamp fields. The returned
// error is the raw stat error, so callers can recognize vanished files.
func BuildRecord(path string) (FileRecord, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return FileRecord{}, err
	}
	mtime := ts.ModTime().Local()
	ctime := mtime
	if ts.HasChangeTime() {
		ctime = ts.ChangeTime().Local()
	}
	rec := FileRecord{
		Path:       path,
		MtimeEpoch: epochSeconds(mtime),
		CtimeEpoch: epochSeconds(ctime),
		MaxTime:    mtime,
	}
	if ctime.After(mtime) {
		rec.MaxTime = ctime
	}
	rec.MaxEpoch = rec.MtimeEpoch
	if rec.CtimeEpoch > rec.MaxEpoch {
		rec.MaxEpoch = rec.CtimeEpoch
	}
	rec.MtimeDate = mtime.Format(time.DateOnly)
	rec.CtimeDate = ctime.Format(time.DateOnly)
	rec.MaxDate = rec.MaxTime.Format(time.DateOnly)
	return rec, nil
}

// OlderThan reports whether the record is selected for shifting. Selection
// looks at mtime alone, strictly before the cutoff; the shift itself is
// anchored to MaxTime. The asymmetry is intentional: a file whose ctime was
// refreshed by a metadata change is still selected on its old mtime, but its
// new timestamp builds on the fresher ctime.
func (r FileRecord) OlderThan(cutoffEpoch float64) bool {
	return r.MtimeEpoch < cutoffEpoch
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
