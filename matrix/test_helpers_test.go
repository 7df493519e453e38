package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/syncdist/matrix"
)

// hide wraps a Matrix so that type switches on *Dense miss and the
// interface fallback paths are exercised.
type hide struct{ matrix.Matrix }

// MustSet WRITES m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// MustDistance allocates an n×n distance matrix (0 diagonal, +Inf elsewhere)
// and sets the given undirected edges.
func MustDistance(t *testing.T, n int, edges [][3]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDistance(n)
	if err != nil {
		t.Fatalf("NewDistance(%d): %v", n, err)
	}
	for _, e := range edges {
		u, v := int(e[0]), int(e[1])
		MustSet(t, d, u, v, e[2])
		MustSet(t, d, v, u, e[2])
	}

	return d
}
