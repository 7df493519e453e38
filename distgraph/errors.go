// SPDX-License-Identifier: MIT

package distgraph

import "errors"

// ErrNoTrajectories indicates Build was called without trajectories;
// an empty graph has no matrix representation.
var ErrNoTrajectories = errors.New("distgraph: no trajectories")
