// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"

	"github.com/katalvlaran/syncdist/trajectory"
)

// index assigns each trajectory ID a row of the distance matrices.
// Rows are dense in [0, n) and never reassigned; pruned rows are retired.
type index struct {
	pos     map[string]int
	ids     []string
	retired []bool
}

// newIndex assigns rows in slice order. Duplicate IDs are rejected.
func newIndex(trs []*trajectory.Trajectory) (*index, error) {
	x := &index{
		pos:     make(map[string]int, len(trs)),
		ids:     make([]string, len(trs)),
		retired: make([]bool, len(trs)),
	}
	for i, tr := range trs {
		id := tr.ID()
		if prev, dup := x.pos[id]; dup {
			return nil, fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateTrajectory, id, prev, i)
		}
		x.pos[id] = i
		x.ids[i] = id
	}

	return x, nil
}

// row returns the row assigned to id, retired or not.
func (x *index) row(id string) (int, bool) {
	i, ok := x.pos[id]
	return i, ok
}

// lookup returns the row of a live (non-retired) id.
func (x *index) lookup(id string) (int, error) {
	i, ok := x.pos[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTrajectory, id)
	}
	if x.retired[i] {
		return 0, fmt.Errorf("%w: %q was pruned", ErrUnknownTrajectory, id)
	}

	return i, nil
}

// retire marks row i as pruned and reports whether it was live.
func (x *index) retire(i int) bool {
	if x.retired[i] {
		return false
	}
	x.retired[i] = true

	return true
}

// live returns the IDs of non-retired rows in row order.
func (x *index) live() []string {
	out := make([]string, 0, len(x.ids))
	for i, id := range x.ids {
		if !x.retired[i] {
			out = append(out, id)
		}
	}

	return out
}
