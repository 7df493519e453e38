// Package syncdist measures how far apart moving objects travel, turning
// time-stamped 2D trajectories into a distance a clustering pipeline can use.
//
// 🚀 What is syncdist?
//
//	A small, concurrent pipeline that brings together:
//		• Trajectories: ordered samples, datasets, deep copies
//		• Synchronisation: linear interpolation onto a shared timeline
//		• Distance graph: overlap-gated direct distances between pairs
//		• Shortest paths: parallel Floyd–Warshall closure
//		• Pruning: connected components by iterative DFS
//
// ✨ Why syncdist?
//
//   - Trajectories that never meet in time are still comparable through
//     the ones that bridge them.
//   - Caller data is never mutated during setup.
//   - Every stage reports progress and logs through log/slog.
//
// Packages:
//
//	trajectory/  — Position, Sample, Trajectory and Dataset
//	synchronize/ — shared timeline and interpolation
//	distgraph/   — OverlapPercent, DirectDistance, Build
//	matrix/      — dense distance matrices, validators, Floyd–Warshall
//	dfs/         — connected components over a distance matrix
//	progress/    — Reporter plus log and Prometheus implementations
//	measure/     — SynchronisedDistance, the DistanceMeasure facade
//
// Quick ASCII example:
//
//	A ├────────┤
//	B      ├──────────┤
//	C                ├────────┤
//
//	A and C share no time, so their direct distance is +∞; the measure
//	reports the path A → B → C instead.
//
//	go get github.com/katalvlaran/syncdist
package syncdist
