// SPDX-License-Identifier: MIT

package trajectory

import "fmt"

// Position is a point in the plane.
type Position struct {
	X float64 // horizontal coordinate
	Y float64 // vertical coordinate
}

// Lerp returns the point at fraction f of the segment p→q.
// f = 0 yields p, f = 1 yields q; f is not clamped.
func (p Position) Lerp(q Position, f float64) Position {
	return Position{
		X: p.X + (q.X-p.X)*f,
		Y: p.Y + (q.Y-p.Y)*f,
	}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sample is a timestamped Position.
type Sample struct {
	T   int64    // timestamp; unique within a trajectory
	Pos Position // recorded or interpolated position
}
