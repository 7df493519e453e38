package progress

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultLogStep is the percentage granularity of LogReporter.
const DefaultLogStep = 10

// LogReporter writes one structured record per Step percent of progress and
// one when a stage completes.
type LogReporter struct {
	logger *slog.Logger
	level  slog.Level
	step   int

	mu   sync.Mutex
	last map[Stage]int // last logged percentage per stage
}

// NewLogReporter returns a LogReporter logging at level Info through logger.
// A nil logger uses slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogReporter{
		logger: logger,
		level:  slog.LevelInfo,
		step:   DefaultLogStep,
		last:   make(map[Stage]int),
	}
}

// WithLevel sets the record level and returns r.
func (r *LogReporter) WithLevel(level slog.Level) *LogReporter {
	r.level = level

	return r
}

// WithStep sets the percentage granularity (1..100) and returns r.
// Values outside the range are clamped.
func (r *LogReporter) WithStep(step int) *LogReporter {
	r.step = min(max(step, 1), 100)

	return r
}

// Report implements Reporter.
func (r *LogReporter) Report(stage Stage, done, total int) {
	pct := 100
	if total > 0 {
		pct = done * 100 / total
	}

	r.mu.Lock()
	last, seen := r.last[stage]
	emit := done >= total || !seen || pct/r.step > last/r.step
	if done >= total {
		delete(r.last, stage) // a later run of the same stage starts fresh
	} else if emit {
		r.last[stage] = pct
	}
	r.mu.Unlock()

	if !emit {
		return
	}
	r.logger.Log(context.Background(), r.level, "progress",
		slog.String("stage", string(stage)),
		slog.Int("done", done),
		slog.Int("total", total),
		slog.Int("percent", pct),
	)
}
