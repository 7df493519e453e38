// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional mutable array of float64 values.
//
// *Dense is the only implementation in this module; algorithms take the
// interface and fast-path *Dense where it matters.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns the element at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange or ErrNaNInf.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy. Complexity: O(rows*cols).
	Clone() Matrix
}
