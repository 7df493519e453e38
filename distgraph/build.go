// SPDX-License-Identifier: MIT

package distgraph

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/syncdist/matrix"
	"github.com/katalvlaran/syncdist/progress"
	"github.com/katalvlaran/syncdist/trajectory"
)

// Build returns the n×n distance graph of trs, where row/column i is trs[i].
//
// Trajectories are only read. Every unordered pair (i < j) is computed once
// by the worker owning row i and written to both [i][j] and [j][i]; no two
// workers write the same cell.
func Build(ctx context.Context, trs []*trajectory.Trajectory, opts ...Option) (*matrix.Dense, error) {
	if len(trs) == 0 {
		return nil, ErrNoTrajectories
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Snapshot and validate every trajectory once
	profiles := make([]profile, len(trs))
	for i, tr := range trs {
		p, err := newProfile(tr)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		profiles[i] = p
	}

	// 2. Zero diagonal, +Inf elsewhere until proven otherwise
	n := len(trs)
	g, err := matrix.NewDistance(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	// 3. Rows fan out; row i owns pairs (i, j>i)
	tracker := progress.NewTracker(o.Reporter, progress.StageDistanceGraph, n)
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(max(o.Workers, 1))
	for i := 0; i < n; i++ {
		if ectx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				d := direct(profiles[i], profiles[j])
				if err := g.Set(i, j, d); err != nil {
					return err
				}
				if err := g.Set(j, i, d); err != nil {
					return err
				}
			}
			tracker.Step()

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
