// SPDX-License-Identifier: MIT

package distgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/syncdist/trajectory"
)

// profile caches what the pair kernels read from a trajectory, so Build
// copies samples once per trajectory rather than once per pair.
type profile struct {
	minT, maxT int64
	samples    []trajectory.Sample
}

// newProfile validates tr and snapshots its bounds and samples.
func newProfile(tr *trajectory.Trajectory) (profile, error) {
	if err := tr.Validate(); err != nil {
		return profile{}, err
	}
	minT, maxT, err := tr.Bounds()
	if err != nil {
		return profile{}, err
	}

	return profile{minT: minT, maxT: maxT, samples: tr.Samples()}, nil
}

// overlap is OverlapPercent on validated profiles (spans are > 0).
func overlap(p, q profile) float64 {
	inter := max(min(p.maxT, q.maxT)-max(p.minT, q.minT), 0)
	if inter == 0 {
		return 0
	}
	fi := float64(inter)

	return 100 * math.Min(fi/float64(p.maxT-p.minT), fi/float64(q.maxT-q.minT))
}

// commonVectors flattens the positions of p and q at their common timestamps
// into two coordinate vectors [x0, y0, x1, y1, ...] and returns |C|.
func commonVectors(p, q profile) (a, b []float64, n int) {
	ps, qs := p.samples, q.samples
	size := min(len(ps), len(qs))
	a = make([]float64, 0, 2*size)
	b = make([]float64, 0, 2*size)

	var i, j int
	for i < len(ps) && j < len(qs) {
		switch {
		case ps[i].T < qs[j].T:
			i++
		case ps[i].T > qs[j].T:
			j++
		default:
			a = append(a, ps[i].Pos.X, ps[i].Pos.Y)
			b = append(b, qs[j].Pos.X, qs[j].Pos.Y)
			n++
			i++
			j++
		}
	}

	return a, b, n
}

// direct is DirectDistance on validated profiles.
func direct(p, q profile) float64 {
	ov := overlap(p, q)
	if ov <= 0 {
		return math.Inf(1)
	}
	a, b, n := commonVectors(p, q)
	if n == 0 {
		return math.Inf(1)
	}

	// sqrt(Σ d² / n²) == ||a - b||₂ / n
	return floats.Distance(a, b, 2) / float64(n) / ov
}

// OverlapPercent returns the contemporary overlap of r and s in percent
// (0..100): the overlap interval length relative to each span, combined
// with min.
func OverlapPercent(r, s *trajectory.Trajectory) (float64, error) {
	p, err := newProfile(r)
	if err != nil {
		return 0, fmt.Errorf("OverlapPercent: %w", err)
	}
	q, err := newProfile(s)
	if err != nil {
		return 0, fmt.Errorf("OverlapPercent: %w", err)
	}

	return overlap(p, q), nil
}

// DirectDistance returns the overlap-normalised mean-square distance between
// r and s over their common timestamps. It is +Inf when the trajectories do
// not overlap in time or share no timestamp.
func DirectDistance(r, s *trajectory.Trajectory) (float64, error) {
	p, err := newProfile(r)
	if err != nil {
		return 0, fmt.Errorf("DirectDistance: %w", err)
	}
	q, err := newProfile(s)
	if err != nil {
		return 0, fmt.Errorf("DirectDistance: %w", err)
	}

	return direct(p, q), nil
}

// Pair returns the distance-graph entry for (r, s): 0 for the same
// trajectory, DirectDistance when the spans overlap and +Inf otherwise.
func Pair(r, s *trajectory.Trajectory) (float64, error) {
	if r == s {
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("Pair: %w", err)
		}
		return 0, nil
	}

	return DirectDistance(r, s)
}
