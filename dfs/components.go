package dfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/syncdist/matrix"
)

// walker encapsulates state during component labelling.
type walker struct {
	m     matrix.Matrix     // square adjacency/distance matrix
	opts  Options           // traversal options
	res   *ComponentsResult // result collector
	stack []int             // explicit DFS stack, reused across trees
}

// Components labels the connected components of m, treating every finite
// off-diagonal entry as an edge. See the package documentation for ordering
// and tie rules.
func Components(m matrix.Matrix, opts ...Option) (*ComponentsResult, error) {
	// 1. Validate input matrix
	if m == nil {
		return nil, ErrMatrixNil
	}
	if d, ok := m.(*matrix.Dense); ok && d == nil {
		return nil, ErrMatrixNil
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result: every vertex starts unvisited
	n := m.Rows()
	res := &ComponentsResult{Labels: make([]int, n), Largest: -1}
	for i := range res.Labels {
		res.Labels[i] = Unvisited
	}
	w := &walker{m: m, opts: o, res: res, stack: make([]int, 0, n)}

	// 4. Forest traversal in index order
	best := 0
	for s := 0; s < n; s++ {
		if res.Labels[s] != Unvisited {
			continue
		}
		c := len(res.Sizes)
		res.Sizes = append(res.Sizes, 0)
		if err := w.traverse(s, c); err != nil {
			return nil, err
		}
		if res.Sizes[c] > best { // strict: first maximum wins
			best = res.Sizes[c]
			res.Largest = c
		}
	}

	return res, nil
}

// traverse labels every vertex reachable from s with component c.
func (w *walker) traverse(s, c int) error {
	if err := w.visit(s, c); err != nil {
		return err
	}
	w.stack = append(w.stack[:0], s)

	n := w.m.Rows()
	var (
		u, v int
		d    float64
		err  error
	)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		u = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 3. Push unvisited neighbours across finite edges
		for v = 0; v < n; v++ {
			if v == u || w.res.Labels[v] != Unvisited {
				continue
			}
			if d, err = w.m.At(u, v); err != nil {
				return fmt.Errorf("dfs: At(%d,%d): %w", u, v, err)
			}
			if math.IsInf(d, 1) {
				continue
			}
			if err = w.visit(v, c); err != nil {
				return err
			}
			w.stack = append(w.stack, v)
		}
	}

	return nil
}

// visit labels v, counts it and fires the pre-order hook.
func (w *walker) visit(v, c int) error {
	w.res.Labels[v] = c
	w.res.Sizes[c]++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, c); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}
