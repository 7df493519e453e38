// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"math"
)

const opFloydWarshall = "FloydWarshall"

// relaxRows performs the step-k relaxation for source rows [lo, hi).
// Only row k and column k are read besides the rows being written, and both
// are invariant during step k, so disjoint [lo, hi) ranges may run concurrently.
func relaxRows(data []float64, n, k, lo, hi int) {
	var (
		i, j         int
		baseK, baseI int
		ik, kj, cand float64
	)
	baseK = k * n
	for i = lo; i < hi; i++ {
		ik = data[i*n+k]
		if math.IsInf(ik, 1) { // i cannot reach k
			continue
		}
		baseI = i * n
		for j = 0; j < n; j++ {
			kj = data[baseK+j]
			if math.IsInf(kj, 1) {
				continue
			}
			cand = ik + kj
			if cand < data[baseI+j] { // strict improvement only
				data[baseI+j] = cand
			}
		}
	}
}

// floydWarshallInPlace runs the closure on a *Dense fast path.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	for k := 0; k < n; k++ {
		relaxRows(d.data, n, k, 0, n)
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n) with a zero diagonal.
//   - +Inf denotes "no edge" off-diagonal and survives only for unreachable pairs.
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements are written.
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateDistance(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}
