// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const opFloydWarshallParallel = "FloydWarshallParallel"

// StepFunc observes closure progress: it is called once after each completed
// step k (0-based) of n, from the calling goroutine.
type StepFunc func(k, n int)

// FloydWarshallParallel computes the same closure as FloydWarshall on d,
// splitting the source rows of every k step across up to workers goroutines.
//
// The k-loop is strictly sequential: all row blocks of step k finish before
// step k+1 starts. Results are bitwise identical to FloydWarshall because
// every cell sees the same operands in the same order.
//
// workers <= 1 runs on the calling goroutine. ctx is checked between steps;
// on cancellation d holds a partially relaxed (still valid upper-bound)
// matrix and ctx.Err() is returned.
//
// Complexity: Time O(n³/workers) per ideal split, extra space O(1).
func FloydWarshallParallel(ctx context.Context, d *Dense, workers int, onStep StepFunc) error {
	if err := ValidateDistance(d); err != nil {
		return matrixErrorf(opFloydWarshallParallel, err)
	}
	n := d.r
	if workers > n {
		workers = n
	}

	chunk := n
	if workers > 1 {
		chunk = (n + workers - 1) / workers
	}

	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if workers <= 1 {
			relaxRows(d.data, n, k, 0, n)
		} else {
			var g errgroup.Group
			for lo := 0; lo < n; lo += chunk {
				hi := min(lo+chunk, n)
				g.Go(func() error {
					relaxRows(d.data, n, k, lo, hi)
					return nil
				})
			}
			_ = g.Wait() // relaxRows never fails
		}

		if onStep != nil {
			onStep(k, n)
		}
	}

	return nil
}
