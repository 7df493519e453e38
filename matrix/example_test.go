package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/syncdist/matrix"
)

func ExampleFloydWarshall() {
	// A—B costs 1, B—C costs 2, A—C has no direct edge.
	d, _ := matrix.NewDistance(3)
	_ = d.Set(0, 1, 1)
	_ = d.Set(1, 0, 1)
	_ = d.Set(1, 2, 2)
	_ = d.Set(2, 1, 2)

	_ = matrix.FloydWarshall(d)
	ac, _ := d.At(0, 2)
	fmt.Println(ac)
	// Output: 3
}
