package shifter

import "time"

// Action describes one planned or applied timestamp change.
type Action struct {
	Path    string
	NewTime time.Time
	Applied bool
	Err     error
}

// NewDate returns the date-only projection of the computed timestamp.
func (a Action) NewDate() string {
	return a.NewTime.Format(time.DateOnly)
}

// Observer receives the orchestrator's run events: once before the first
// file, once per selected file, once after the last. Purely observational;
// it cannot influence the run.
type Observer interface {
	RunStarted(root string)
	FileShifted(a Action)
	RunCompleted(s Stats)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) RunStarted(string)  {}
func (NopObserver) FileShifted(Action) {}
func (NopObserver) RunCompleted(Stats) {}
