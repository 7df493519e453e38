// SPDX-License-Identifier: MIT

// Package measure provides SynchronisedDistance, a pairwise distance between
// trajectories meant to be plugged into a trajectory-clustering pipeline.
//
// Setup (CreateSupportData) runs once over the input datasets:
//
//  1. every trajectory is deep-copied, so caller data is never mutated;
//  2. copies are synchronised onto the shared timeline (package synchronize);
//  3. a direct distance graph gated by temporal overlap is built (package distgraph);
//  4. the graph is closed with Floyd–Warshall (package matrix).
//
// Afterwards ComputeDistance is an O(1) lookup in the closed matrix.
// RemoveImpossibleTrajectories prunes from a caller dataset every trajectory
// outside the largest connected component of the direct graph (package dfs).
//
// Index lifecycle:
//
// The ID → row assignment is built once per setup and never compacted.
// Pruning retires the removed rows: queries naming a retired trajectory fail
// with ErrUnknownTrajectory, while queries among retained trajectories keep
// returning the values computed at setup. Those values are unaffected by
// pruning because a shortest path never leaves its connected component.
//
// Concurrency:
//
// A SynchronisedDistance is safe for concurrent use. Setup computes without
// holding the lock and swaps the new state in only on success, so a failed or
// cancelled setup leaves the previous state (if any) intact.
//
// Errors:
//
//   - ErrNotPrepared        - query or prune before a successful setup.
//   - ErrUnknownTrajectory  - ID absent from the index, or retired by pruning.
//   - ErrDisconnectedPair   - both IDs known but in different components (value +Inf).
//   - ErrDuplicateTrajectory - two input trajectories share an ID.
//   - ErrNilDataset         - nil dataset argument.
//
// Setup also surfaces trajectory.ErrDegenerateTrajectory and context errors.
package measure
