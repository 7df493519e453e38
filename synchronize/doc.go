// SPDX-License-Identifier: MIT

// Package synchronize aligns trajectories onto a shared timestamp grid by
// linear interpolation, so that temporally overlapping trajectories can be
// compared sample by sample.
//
// Algorithm:
//
//  1. Timeline: the sorted set of distinct timestamps of ALL trajectories.
//  2. For each trajectory with span [minT, maxT] and each timeline timestamp
//     t with minT < t < maxT that the trajectory lacks, find its nearest
//     recorded sample before t and after t and insert
//     before + (after - before) * (t - tb) / (ta - tb).
//
// Boundaries minT and maxT are never interpolated; they are real data.
// Only samples present before the call are used as interpolation anchors.
// Because the bracketing samples of t are unique there are no ties to break.
//
// Concurrency:
//
//	Trajectories are mutated independently, so Synchronize fans out across
//	trajectories (WithWorkers). Each trajectory is touched by one goroutine.
//
// Errors:
//
//   - trajectory.ErrDegenerateTrajectory  fewer than two samples or zero span;
//     detected for every input BEFORE any trajectory is mutated.
//   - context errors                      Synchronize cancelled.
//
// Complexity:
//
//   - Timeline: O(N log N) over all N samples.
//   - Trajectory: O(U log S + S + U) with U timeline stamps inside the span.
package synchronize
