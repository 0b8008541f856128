package shifter

import (
	"context"
	"io/fs"
	"time"

	"retime/logger"

	"golang.org/x/time/rate"
)

// Options configures one shifting run.
type Options struct {
	Root           string
	AddMonths      int
	AddDays        int
	Cutoff         time.Time
	Apply          bool
	MaxIOPerSecond int
}

// Stats summarizes a completed run.
type Stats struct {
	StartTime    string
	EndTime      string
	FilesScanned int
	FilesShifted int
	FilesFailed  int
}

// Run walks opts.Root and, for every regular file whose mtime is strictly
// older than the cutoff, computes max(mtime, ctime) shifted by the calendar
// offset and hands it to the writer. One file is fully processed before the
// next is pulled; records are never accumulated. Per-file failures are
// counted and reported, never fatal; only context cancellation aborts.
func Run(ctx context.Context, opts Options, obs Observer) (Stats, error) {
	return run(ctx, opts, NewWriter(opts.Apply), obs)
}

func run(ctx context.Context, opts Options, w Writer, obs Observer) (Stats, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	var ioLimiter *rate.Limiter
	if opts.MaxIOPerSecond > 0 {
		ioLimiter = rate.NewLimiter(rate.Limit(opts.MaxIOPerSecond), opts.MaxIOPerSecond)
	}
	cutoffEpoch := epochSeconds(opts.Cutoff)
	stats := Stats{StartTime: time.Now().Format(time.RFC3339)}
	obs.RunStarted(opts.Root)

	err := stackWalker{}.Walk(ctx, opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warnf("Failed to access %s: %v", path, err)
			return nil
		}
		stats.FilesScanned++
		rec, err := BuildRecord(path)
		if err != nil {
			logger.Warnf("Failed to stat %s: %v", path, err)
			stats.FilesFailed++
			return nil
		}
		if !rec.OlderThan(cutoffEpoch) {
			return nil
		}
		action := Action{
			Path:    rec.Path,
			NewTime: AddMonthsDays(rec.MaxTime, opts.AddMonths, opts.AddDays),
			Applied: opts.Apply,
		}
		if werr := w.SetTimes(rec.Path, action.NewTime); werr != nil {
			logger.Warnf("Failed to set times on %s: %v", rec.Path, werr)
			action.Applied = false
			action.Err = werr
			stats.FilesFailed++
		} else {
			stats.FilesShifted++
		}
		obs.FileShifted(action)
		if ioLimiter != nil {
			if lerr := ioLimiter.Wait(ctx); lerr != nil {
				return lerr
			}
		}
		return nil
	})

	stats.EndTime = time.Now().Format(time.RFC3339)
	obs.RunCompleted(stats)
	return stats, err
}
