// Package dfs labels the connected components of a weighted distance graph
// stored as a square matrix, using an iterative depth-first search.
//
// What:
//
//   - Components(m, opts...): an edge u—v exists wherever m[u][v] < +Inf
//     (u != v). Every unvisited vertex, in index order, seeds one DFS tree;
//     each tree is one component.
//   - The traversal uses an explicit stack, so memory is bounded by O(V)
//     and very large vertex counts cannot overflow the goroutine stack.
//
// Why:
//
//   - A distance measure is only useful for clustering if every retained pair
//     has a finite distance. The largest component of the raw distance graph
//     is the set of trajectories that can be kept.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per visited vertex.
//   - WithOnVisit(fn)    pre-order hook; a non-nil error aborts the traversal.
//
// Determinism:
//
//   - Component ids follow seed order (component 0 contains vertex 0).
//   - Largest is the FIRST component reaching the maximum size.
//
// Complexity:
//
//   - Time O(V²) on a dense matrix (every row is scanned once), Memory O(V).
//
// Errors:
//
//   - ErrMatrixNil             m is nil.
//   - matrix.ErrNonSquare      m is not square.
//   - context.Canceled         traversal cancelled via context.
//   - hook errors              propagated from OnVisit.
package dfs
