// SPDX-License-Identifier: MIT

// Package trajectory defines the Position, Sample, Trajectory and Dataset
// types consumed by the synchronised distance engine.
//
// What:
//
//   - Position: a 2D coordinate (X, Y).
//   - Sample: a (timestamp, Position) pair. Timestamps are integers.
//   - Trajectory: an identifier plus samples kept strictly ordered by
//     timestamp; timestamps are unique within one trajectory.
//   - Dataset: an ordered, removable collection of trajectories with
//     copy-construction (Clone).
//
// Why:
//
//   - The engine never mutates caller-owned trajectories. It clones a
//     Dataset, mutates the clones (interpolated samples are inserted, never
//     removed) and discards them once its matrices are built.
//   - Pruning is the only operation that touches a caller-owned Dataset.
//
// Concurrency:
//
//   - Dataset is safe for concurrent use; all methods lock internally.
//   - Trajectory is NOT synchronised. A single goroutine may mutate one
//     trajectory at a time; concurrent readers are fine once mutation stops.
//
// Errors:
//
//   - ErrDegenerateTrajectory  fewer than two samples or zero span.
//   - ErrDuplicateTimestamp    Add with a timestamp that already exists.
//   - ErrTimestampNotFound     PositionAt for a missing timestamp.
//   - ErrEmpty                 Bounds/Span on a trajectory with no samples.
//   - ErrNilTrajectory         nil *Trajectory passed to a Dataset.
//
// Complexity:
//
//   - Add: O(S) worst case (sorted insert); PositionAt, Has: O(log S).
//   - Bounds, Span: O(1).
//   - Dataset.Clone: O(total samples).
package trajectory
