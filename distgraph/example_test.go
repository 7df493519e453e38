package distgraph_test

import (
	"fmt"

	"github.com/katalvlaran/syncdist/distgraph"
	"github.com/katalvlaran/syncdist/trajectory"
)

func ExampleDirectDistance() {
	a, _ := trajectory.NewWithSamples("a",
		trajectory.Sample{T: 0, Pos: trajectory.Position{X: 0, Y: 0}},
		trajectory.Sample{T: 10, Pos: trajectory.Position{X: 0, Y: 0}},
	)
	b, _ := trajectory.NewWithSamples("b",
		trajectory.Sample{T: 0, Pos: trajectory.Position{X: 3, Y: 4}},
		trajectory.Sample{T: 10, Pos: trajectory.Position{X: 3, Y: 4}},
	)

	ov, _ := distgraph.OverlapPercent(a, b)
	d, _ := distgraph.DirectDistance(a, b)
	fmt.Printf("overlap=%.0f%% distance=%.6f\n", ov, d)
	// Output: overlap=100% distance=0.035355
}
