// SPDX-License-Identifier: MIT

package trajectory

import "errors"

// Sentinel errors for trajectory and dataset operations.
// Every message is prefixed with "trajectory: " and callers match with errors.Is.
var (
	// ErrDegenerateTrajectory indicates a trajectory with fewer than two samples
	// or with zero duration; overlap and interpolation are undefined for it.
	ErrDegenerateTrajectory = errors.New("trajectory: degenerate trajectory")

	// ErrDuplicateTimestamp indicates an Add with a timestamp already present.
	ErrDuplicateTimestamp = errors.New("trajectory: duplicate timestamp")

	// ErrTimestampNotFound indicates a lookup for a timestamp the trajectory lacks.
	ErrTimestampNotFound = errors.New("trajectory: timestamp not found")

	// ErrEmpty indicates a bounds query on a trajectory without samples.
	ErrEmpty = errors.New("trajectory: no samples")

	// ErrNilTrajectory indicates a nil *Trajectory argument.
	ErrNilTrajectory = errors.New("trajectory: nil trajectory")
)
