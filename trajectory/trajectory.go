// SPDX-License-Identifier: MIT

package trajectory

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Trajectory is a time-ordered sequence of positions recorded for one moving entity.
//
// Samples are kept sorted by timestamp with no duplicates, so the first and
// last sample always carry the span bounds.
type Trajectory struct {
	id      string   // unique identifier within a pipeline run
	samples []Sample // strictly increasing by T
}

// New returns an empty trajectory with the given id.
// An empty id is replaced by a random UUID.
func New(id string) *Trajectory {
	if id == "" {
		id = uuid.NewString()
	}

	return &Trajectory{id: id}
}

// NewWithSamples returns a trajectory holding the given samples in timestamp order.
// Input order does not matter. Duplicate timestamps yield ErrDuplicateTimestamp.
//
// Complexity: O(S log S).
func NewWithSamples(id string, samples ...Sample) (*Trajectory, error) {
	tr := New(id)
	tr.samples = make([]Sample, len(samples))
	copy(tr.samples, samples)
	slices.SortFunc(tr.samples, func(a, b Sample) int { return cmpTime(a.T, b.T) })

	var i int
	for i = 1; i < len(tr.samples); i++ {
		if tr.samples[i].T == tr.samples[i-1].T {
			return nil, fmt.Errorf("NewWithSamples(%q): t=%d: %w", tr.id, tr.samples[i].T, ErrDuplicateTimestamp)
		}
	}

	return tr, nil
}

// cmpTime orders timestamps ascending.
func cmpTime(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// ID returns the trajectory identifier.
func (tr *Trajectory) ID() string { return tr.id }

// Len returns the number of samples.
func (tr *Trajectory) Len() int { return len(tr.samples) }

// Samples returns a copy of the samples in timestamp order.
func (tr *Trajectory) Samples() []Sample {
	out := make([]Sample, len(tr.samples))
	copy(out, tr.samples)

	return out
}

// Timestamps returns the sample timestamps in increasing order.
func (tr *Trajectory) Timestamps() []int64 {
	out := make([]int64, len(tr.samples))
	for i := range tr.samples {
		out[i] = tr.samples[i].T
	}

	return out
}

// search returns the position of the first sample with T >= t.
func (tr *Trajectory) search(t int64) int {
	return sort.Search(len(tr.samples), func(i int) bool { return tr.samples[i].T >= t })
}

// Has reports whether a sample exists at timestamp t.
// Complexity: O(log S).
func (tr *Trajectory) Has(t int64) bool {
	i := tr.search(t)

	return i < len(tr.samples) && tr.samples[i].T == t
}

// PositionAt returns the position recorded at timestamp t.
// Returns ErrTimestampNotFound if there is no sample at t.
// Complexity: O(log S).
func (tr *Trajectory) PositionAt(t int64) (Position, error) {
	i := tr.search(t)
	if i == len(tr.samples) || tr.samples[i].T != t {
		return Position{}, fmt.Errorf("PositionAt(%q, %d): %w", tr.id, t, ErrTimestampNotFound)
	}

	return tr.samples[i].Pos, nil
}

// Add inserts a sample at timestamp t keeping timestamp order.
// Returns ErrDuplicateTimestamp if t is already present.
//
// Complexity: O(log S) search plus O(S) shift in the worst case.
func (tr *Trajectory) Add(t int64, pos Position) error {
	i := tr.search(t)
	if i < len(tr.samples) && tr.samples[i].T == t {
		return fmt.Errorf("Add(%q, %d): %w", tr.id, t, ErrDuplicateTimestamp)
	}
	tr.samples = slices.Insert(tr.samples, i, Sample{T: t, Pos: pos})

	return nil
}

// Merge inserts a batch of samples in one pass, keeping timestamp order.
// Returns ErrDuplicateTimestamp, leaving the trajectory unchanged, if any
// timestamp repeats within the batch or already exists.
//
// Complexity: O(B log B + S + B) for a batch of B samples.
func (tr *Trajectory) Merge(batch []Sample) error {
	if len(batch) == 0 {
		return nil
	}
	in := make([]Sample, len(batch))
	copy(in, batch)
	slices.SortFunc(in, func(a, b Sample) int { return cmpTime(a.T, b.T) })

	out := make([]Sample, 0, len(tr.samples)+len(in))
	var i, j int
	for i < len(tr.samples) || j < len(in) {
		var next Sample
		switch {
		case j == len(in):
			next, i = tr.samples[i], i+1
		case i == len(tr.samples):
			next, j = in[j], j+1
		case tr.samples[i].T <= in[j].T:
			next, i = tr.samples[i], i+1
		default:
			next, j = in[j], j+1
		}
		if n := len(out); n > 0 && out[n-1].T == next.T {
			return fmt.Errorf("Merge(%q, %d): %w", tr.id, next.T, ErrDuplicateTimestamp)
		}
		out = append(out, next)
	}
	tr.samples = out

	return nil
}

// Bracket returns the nearest samples strictly before and strictly after t.
// ok is false when t is not strictly inside (minT, maxT).
// A sample at t itself, if any, is never returned.
func (tr *Trajectory) Bracket(t int64) (before, after Sample, ok bool) {
	i := tr.search(t) // first sample with T >= t
	if i == 0 || i == len(tr.samples) {
		return Sample{}, Sample{}, false
	}
	j := i
	if tr.samples[j].T == t {
		j++ // skip an exact hit
		if j == len(tr.samples) {
			return Sample{}, Sample{}, false
		}
	}

	return tr.samples[i-1], tr.samples[j], true
}

// Bounds returns the first and last timestamp.
// Returns ErrEmpty if the trajectory has no samples.
func (tr *Trajectory) Bounds() (minT, maxT int64, err error) {
	if len(tr.samples) == 0 {
		return 0, 0, fmt.Errorf("Bounds(%q): %w", tr.id, ErrEmpty)
	}

	return tr.samples[0].T, tr.samples[len(tr.samples)-1].T, nil
}

// Span returns maxT - minT.
func (tr *Trajectory) Span() (int64, error) {
	minT, maxT, err := tr.Bounds()
	if err != nil {
		return 0, err
	}

	return maxT - minT, nil
}

// Validate reports ErrDegenerateTrajectory when the trajectory has fewer than
// two samples or a zero span. Such trajectories cannot be synchronised and
// make the overlap percentage undefined.
func (tr *Trajectory) Validate() error {
	if len(tr.samples) < 2 {
		return fmt.Errorf("trajectory %q has %d sample(s): %w", tr.id, len(tr.samples), ErrDegenerateTrajectory)
	}
	if tr.samples[len(tr.samples)-1].T == tr.samples[0].T {
		return fmt.Errorf("trajectory %q has zero span: %w", tr.id, ErrDegenerateTrajectory)
	}

	return nil
}

// Clone returns a deep copy with the same id.
// Complexity: O(S).
func (tr *Trajectory) Clone() *Trajectory {
	return &Trajectory{id: tr.id, samples: tr.Samples()}
}

// String implements fmt.Stringer.
func (tr *Trajectory) String() string {
	return fmt.Sprintf("Trajectory(%s, %d samples)", tr.id, len(tr.samples))
}
