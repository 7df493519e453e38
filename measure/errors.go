// SPDX-License-Identifier: MIT

package measure

import "errors"

var (
	// ErrNotPrepared is returned when queries run before CreateSupportData succeeded.
	ErrNotPrepared = errors.New("measure: support data not created")

	// ErrUnknownTrajectory indicates an ID that is not (or no longer) indexed.
	ErrUnknownTrajectory = errors.New("measure: unknown trajectory")

	// ErrDisconnectedPair indicates two trajectories with no finite path between them.
	ErrDisconnectedPair = errors.New("measure: trajectories are not connected")

	// ErrDuplicateTrajectory indicates two input trajectories with the same ID.
	ErrDuplicateTrajectory = errors.New("measure: duplicate trajectory id")

	// ErrNilDataset indicates a nil *trajectory.Dataset argument.
	ErrNilDataset = errors.New("measure: dataset is nil")
)
