package progress

import "sync/atomic"

// Stage names one phase of the pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageCopy          Stage = "copy"
	StageSynchronise   Stage = "synchronise"
	StageDistanceGraph Stage = "distance_graph"
	StageShortestPaths Stage = "shortest_paths"
	StagePrune         Stage = "prune"
)

// Reporter receives progress of a stage: done of total units are complete.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Report(stage Stage, done, total int)
}

// Nop discards every report.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(Stage, int, int) {}

// Func adapts a plain function into a Reporter.
type Func func(stage Stage, done, total int)

// Report implements Reporter.
func (f Func) Report(stage Stage, done, total int) { f(stage, done, total) }

// Multi forwards each report to every non-nil reporter in order.
func Multi(rs ...Reporter) Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

type multi []Reporter

func (m multi) Report(stage Stage, done, total int) {
	for _, r := range m {
		r.Report(stage, done, total)
	}
}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}

	return r
}

// Tracker counts completed units of one stage from many goroutines.
type Tracker struct {
	r     Reporter
	stage Stage
	total int
	done  atomic.Int64
}

// NewTracker returns a Tracker for total units of stage and reports 0/total.
func NewTracker(r Reporter, stage Stage, total int) *Tracker {
	t := &Tracker{r: OrNop(r), stage: stage, total: total}
	t.r.Report(stage, 0, total)

	return t
}

// Step marks one unit complete and reports the new count.
func (t *Tracker) Step() {
	t.r.Report(t.stage, int(t.done.Add(1)), t.total)
}

// Done returns the number of completed units.
func (t *Tracker) Done() int { return int(t.done.Load()) }
