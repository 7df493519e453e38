// SPDX-License-Identifier: MIT

package synchronize

import (
	"context"
	"slices"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/syncdist/progress"
	"github.com/katalvlaran/syncdist/trajectory"
)

// Stats summarises a Synchronize run.
type Stats struct {
	Trajectories int // trajectories processed
	Timeline     int // distinct timestamps across all trajectories
	Interpolated int // samples inserted in total
}

// Timeline returns the distinct timestamps of all trajectories in increasing order.
func Timeline(trs []*trajectory.Trajectory) []int64 {
	var total int
	for _, tr := range trs {
		total += tr.Len()
	}
	ts := make([]int64, 0, total)
	for _, tr := range trs {
		ts = append(ts, tr.Timestamps()...)
	}
	slices.Sort(ts)

	return slices.Compact(ts)
}

// Trajectory inserts an interpolated sample into tr for every timeline
// timestamp strictly inside tr's span that tr lacks, and returns how many
// samples were inserted. timeline must be sorted ascending.
func Trajectory(tr *trajectory.Trajectory, timeline []int64) (int, error) {
	if err := tr.Validate(); err != nil {
		return 0, err
	}
	minT, maxT, err := tr.Bounds()
	if err != nil {
		return 0, err
	}

	// Restrict the walk to (minT, maxT).
	lo := sort.Search(len(timeline), func(i int) bool { return timeline[i] > minT })
	hi := sort.Search(len(timeline), func(i int) bool { return timeline[i] >= maxT })
	if lo >= hi {
		return 0, nil
	}

	var (
		batch         []trajectory.Sample
		before, after trajectory.Sample
		ok            bool
		f             float64
	)
	for _, t := range timeline[lo:hi] {
		if tr.Has(t) {
			continue
		}
		// tr is not mutated until Merge, so anchors are recorded samples only.
		if before, after, ok = tr.Bracket(t); !ok {
			continue
		}
		f = float64(t-before.T) / float64(after.T-before.T)
		batch = append(batch, trajectory.Sample{T: t, Pos: before.Pos.Lerp(after.Pos, f)})
	}
	if err = tr.Merge(batch); err != nil {
		return 0, err
	}

	return len(batch), nil
}

// Synchronize validates every trajectory, computes the shared timeline and
// interpolates each trajectory onto it in place.
//
// Validation happens up front: on ErrDegenerateTrajectory nothing has been
// mutated. On cancellation some trajectories may already be synchronised.
func Synchronize(ctx context.Context, trs []*trajectory.Trajectory, opts ...Option) (Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Validate all inputs before touching any of them
	for _, tr := range trs {
		if err := tr.Validate(); err != nil {
			return Stats{}, err
		}
	}

	// 2. Shared timeline
	timeline := Timeline(trs)
	stats := Stats{Trajectories: len(trs), Timeline: len(timeline)}

	// 3. Fan out across trajectories
	tracker := progress.NewTracker(o.Reporter, progress.StageSynchronise, len(trs))
	var inserted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.Workers, 1))
	for _, tr := range trs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := Trajectory(tr, timeline)
			if err != nil {
				return err
			}
			inserted.Add(int64(n))
			tracker.Step()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	stats.Interpolated = int(inserted.Load())

	return stats, nil
}
