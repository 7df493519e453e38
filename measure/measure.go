// SPDX-License-Identifier: MIT

package measure

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/syncdist/dfs"
	"github.com/katalvlaran/syncdist/distgraph"
	"github.com/katalvlaran/syncdist/matrix"
	"github.com/katalvlaran/syncdist/progress"
	"github.com/katalvlaran/syncdist/synchronize"
	"github.com/katalvlaran/syncdist/trajectory"
)

// DistanceMeasure is the contract a clustering pipeline consumes.
type DistanceMeasure interface {
	// CreateSupportData prepares the measure from the given datasets.
	CreateSupportData(ctx context.Context, datasets ...*trajectory.Dataset) error

	// RemoveImpossibleTrajectories removes from d every trajectory that
	// cannot reach the main group of trajectories, returning how many.
	RemoveImpossibleTrajectories(d *trajectory.Dataset) (int, error)

	// ComputeDistance returns the distance between a and b.
	ComputeDistance(a, b *trajectory.Trajectory) (float64, error)
}

var _ DistanceMeasure = (*SynchronisedDistance)(nil)

// SynchronisedDistance measures trajectories by the shortest path between
// them in the overlap-gated distance graph of synchronised trajectories.
type SynchronisedDistance struct {
	opts Options

	mu       sync.RWMutex
	idx      *index
	graph    *matrix.Dense // direct distances
	shortest *matrix.Dense // closure of graph
}

// New returns an unprepared SynchronisedDistance.
func New(opts ...Option) *SynchronisedDistance {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &SynchronisedDistance{opts: o}
}

// CreateSupportData copies the trajectories of all datasets (in dataset
// order, then trajectory order), synchronises the copies, and builds the
// direct and shortest distance matrices. Calling it again replaces all
// state; identical input yields identical matrices.
//
// On error the previous state is kept unchanged.
func (s *SynchronisedDistance) CreateSupportData(ctx context.Context, datasets ...*trajectory.Dataset) error {
	log := s.opts.Logger
	rep := s.opts.Reporter
	start := time.Now()

	// 1. Copy
	tracker := progress.NewTracker(rep, progress.StageCopy, len(datasets))
	var trs []*trajectory.Trajectory
	for i, d := range datasets {
		if d == nil {
			return fmt.Errorf("CreateSupportData: dataset %d: %w", i, ErrNilDataset)
		}
		trs = append(trs, d.Clone().Trajectories()...)
		tracker.Step()
	}
	idx, err := newIndex(trs)
	if err != nil {
		return fmt.Errorf("CreateSupportData: %w", err)
	}
	log.Debug("trajectories copied", "datasets", len(datasets), "trajectories", len(trs))

	// 2. Synchronise
	stats, err := synchronize.Synchronize(ctx, trs,
		synchronize.WithWorkers(s.opts.Workers),
		synchronize.WithReporter(rep),
	)
	if err != nil {
		return fmt.Errorf("CreateSupportData: synchronise: %w", err)
	}
	log.Debug("trajectories synchronised",
		"timeline", stats.Timeline,
		"interpolated", stats.Interpolated,
		"elapsed", time.Since(start),
	)

	// 3. Direct distance graph
	mark := time.Now()
	graph, err := distgraph.Build(ctx, trs,
		distgraph.WithWorkers(s.opts.Workers),
		distgraph.WithReporter(rep),
	)
	if err != nil {
		return fmt.Errorf("CreateSupportData: distance graph: %w", err)
	}
	log.Debug("distance graph built", "trajectories", len(trs), "elapsed", time.Since(mark))

	// 4. Shortest-path closure on a copy
	mark = time.Now()
	shortest := graph.CloneDense()
	fw := progress.NewTracker(rep, progress.StageShortestPaths, len(trs))
	if err = matrix.FloydWarshallParallel(ctx, shortest, s.opts.Workers, func(int, int) { fw.Step() }); err != nil {
		return fmt.Errorf("CreateSupportData: shortest paths: %w", err)
	}
	log.Debug("shortest paths computed", "elapsed", time.Since(mark))

	s.mu.Lock()
	s.idx, s.graph, s.shortest = idx, graph, shortest
	s.mu.Unlock()

	log.Info("support data created", "trajectories", len(trs), "elapsed", time.Since(start))

	return nil
}

// RemoveImpossibleTrajectories removes from d every trajectory outside the
// largest connected component of the direct distance graph (ties resolved
// towards the component containing the lowest row). Rows outside that
// component are retired from the index even when d does not hold them.
//
// Every trajectory in d must have been part of the setup input; otherwise
// ErrUnknownTrajectory is returned and d is left unchanged.
func (s *SynchronisedDistance) RemoveImpossibleTrajectories(d *trajectory.Dataset) (int, error) {
	if d == nil {
		return 0, fmt.Errorf("RemoveImpossibleTrajectories: %w", ErrNilDataset)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == nil {
		return 0, fmt.Errorf("RemoveImpossibleTrajectories: %w", ErrNotPrepared)
	}

	for _, tr := range d.Trajectories() {
		if _, ok := s.idx.row(tr.ID()); !ok {
			return 0, fmt.Errorf("RemoveImpossibleTrajectories: %w: %q", ErrUnknownTrajectory, tr.ID())
		}
	}

	n := s.graph.Rows()
	tracker := progress.NewTracker(s.opts.Reporter, progress.StagePrune, n)
	comps, err := dfs.Components(s.graph, dfs.WithOnVisit(func(int, int) error {
		tracker.Step()
		return nil
	}))
	if err != nil {
		return 0, fmt.Errorf("RemoveImpossibleTrajectories: %w", err)
	}

	removed := d.RemoveFunc(func(tr *trajectory.Trajectory) bool {
		i, ok := s.idx.row(tr.ID())
		return ok && !comps.InLargest(i)
	})

	var retired int
	for i := 0; i < n; i++ {
		if !comps.InLargest(i) && s.idx.retire(i) {
			retired++
		}
	}

	s.opts.Logger.Debug("impossible trajectories removed",
		"components", comps.Count(),
		"largest", comps.Sizes[comps.Largest],
		"removed", removed,
		"retired", retired,
	)

	return removed, nil
}

// ComputeDistance returns the shortest distance between a and b.
//
// If a and b lie in different components the result is +Inf together with
// ErrDisconnectedPair.
func (s *SynchronisedDistance) ComputeDistance(a, b *trajectory.Trajectory) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("ComputeDistance: %w", trajectory.ErrNilTrajectory)
	}

	return s.DistanceByID(a.ID(), b.ID())
}

// DistanceByID is ComputeDistance keyed by trajectory IDs.
func (s *SynchronisedDistance) DistanceByID(a, b string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx == nil {
		return 0, fmt.Errorf("ComputeDistance: %w", ErrNotPrepared)
	}

	i, err := s.idx.lookup(a)
	if err != nil {
		return 0, fmt.Errorf("ComputeDistance: %w", err)
	}
	j, err := s.idx.lookup(b)
	if err != nil {
		return 0, fmt.Errorf("ComputeDistance: %w", err)
	}

	v, err := s.shortest.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("ComputeDistance: %w", err)
	}
	if math.IsInf(v, 1) {
		return v, fmt.Errorf("ComputeDistance: %w: %q and %q", ErrDisconnectedPair, a, b)
	}

	return v, nil
}

// DistanceGraph returns a copy of the direct distance graph, or nil before setup.
func (s *SynchronisedDistance) DistanceGraph() *matrix.Dense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil
	}

	return s.graph.CloneDense()
}

// ShortestDistances returns a copy of the shortest-distance matrix, or nil before setup.
func (s *SynchronisedDistance) ShortestDistances() *matrix.Dense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.shortest == nil {
		return nil
	}

	return s.shortest.CloneDense()
}

// Index returns the trajectory ID of every matrix row, in row order.
// Retired rows are included; see Live.
func (s *SynchronisedDistance) Index() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx == nil {
		return nil
	}

	return append([]string(nil), s.idx.ids...)
}

// Live returns the IDs of rows not retired by pruning, in row order.
func (s *SynchronisedDistance) Live() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx == nil {
		return nil
	}

	return s.idx.live()
}

// Len returns the number of matrix rows, 0 before setup.
func (s *SynchronisedDistance) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx == nil {
		return 0
	}

	return len(s.idx.ids)
}
