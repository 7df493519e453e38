// SPDX-License-Identifier: MIT

// Package distgraph builds the direct (one-hop) distance graph between
// synchronised trajectories.
//
// For trajectories r and s:
//
//	I       = max(0, min(r.maxT, s.maxT) - max(r.minT, s.minT))
//	overlap = 100 * min(I / r.span, I / s.span)                  (percent)
//	C       = timestamps present in both r and s
//	direct  = sqrt( Σ_{t∈C} |r(t) - s(t)|² / |C|² ) / overlap
//
// The graph entry is 0 on the diagonal, direct when overlap > 0 and +Inf
// otherwise. Dividing by the overlap percentage inflates the distance of
// pairs that share only a small part of their lifetimes.
//
// Build writes the upper triangle row by row across workers and mirrors
// every cell, so each matrix location is written exactly once.
//
// Errors:
//
//   - trajectory.ErrDegenerateTrajectory  zero span or fewer than two samples.
//   - ErrNoTrajectories                   Build on an empty input.
package distgraph
