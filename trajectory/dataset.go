// SPDX-License-Identifier: MIT

package trajectory

import (
	"fmt"
	"sync"
)

// Dataset is an ordered, removable collection of trajectories.
//
// All methods are safe for concurrent use. Trajectories returned by
// Trajectories are shared with the Dataset; use Clone for an independent copy.
type Dataset struct {
	mu    sync.RWMutex  // guards items
	items []*Trajectory // insertion order
}

// NewDataset returns a Dataset holding trs in the given order.
// Returns ErrNilTrajectory if any element is nil.
func NewDataset(trs ...*Trajectory) (*Dataset, error) {
	d := &Dataset{items: make([]*Trajectory, 0, len(trs))}
	for _, tr := range trs {
		if err := d.Add(tr); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Add appends tr to the end of the dataset.
func (d *Dataset) Add(tr *Trajectory) error {
	if tr == nil {
		return fmt.Errorf("Dataset.Add: %w", ErrNilTrajectory)
	}
	d.mu.Lock()
	d.items = append(d.items, tr)
	d.mu.Unlock()

	return nil
}

// Size returns the number of trajectories.
func (d *Dataset) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.items)
}

// Trajectories returns a snapshot of the trajectories in order.
// The slice is fresh; the *Trajectory values are shared.
func (d *Dataset) Trajectories() []*Trajectory {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Trajectory, len(d.items))
	copy(out, d.items)

	return out
}

// Remove deletes every trajectory with the given id and reports whether any was removed.
func (d *Dataset) Remove(id string) bool {
	return d.RemoveFunc(func(tr *Trajectory) bool { return tr.ID() == id }) > 0
}

// RemoveFunc deletes every trajectory for which del returns true, preserving
// the order of the rest. It returns the number of trajectories removed.
// del is called under the write lock and must not call back into d.
//
// Complexity: O(N).
func (d *Dataset) RemoveFunc(del func(*Trajectory) bool) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.items[:0]
	for _, tr := range d.items {
		if !del(tr) {
			kept = append(kept, tr)
		}
	}
	removed := len(d.items) - len(kept)
	// Clear the tail so removed trajectories can be collected.
	for i := len(kept); i < len(d.items); i++ {
		d.items[i] = nil
	}
	d.items = kept

	return removed
}

// Clone returns a deep copy: every trajectory is cloned.
// Complexity: O(total samples).
func (d *Dataset) Clone() *Dataset {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := &Dataset{items: make([]*Trajectory, len(d.items))}
	for i, tr := range d.items {
		out.items[i] = tr.Clone()
	}

	return out
}
