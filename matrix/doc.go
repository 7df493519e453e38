// SPDX-License-Identifier: MIT

// Package matrix provides the dense n×n storage and the all-pairs shortest-path
// closure used by the synchronised distance engine.
//
// What:
//
//   - Dense: a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking).
//   - FloydWarshall: in-place dense APSP closure with fixed k → i → j order.
//   - FloydWarshallParallel: the same closure with the i-loop of every k step
//     split across workers; the k-loop itself stays strictly sequential.
//   - Validators: square, symmetric and zero-diagonal checks.
//
// Numeric policy:
//
//   - +Inf means "no path"; it is a legal value everywhere.
//   - NaN and -Inf are rejected by Set and Fill with ErrNaNInf.
//
// In-place aliasing:
//
//	The closure reads and writes one buffer. At step k, row k and column k
//	cannot change (d[i][k] + d[k][k] = d[i][k] when d[k][k] = 0), so every
//	(i, j) update in that step observes the values from the end of step k-1.
//	This is what makes splitting rows safe INSIDE a step and what forbids
//	running two k steps at once.
//
// Complexity:
//
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c).
//   - FloydWarshall: Time O(n³), extra space O(1).
package matrix
