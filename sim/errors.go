package sim

import (
	"errors"

	"github.com/katalvlaran/evacsim/roadnet"
)

// Sentinel errors for simulator operations. Match with errors.Is.
var (
	// ErrConfiguration is shared with roadnet so one check covers an invalid
	// Config, a mismatched graph and a missing sink tree.
	ErrConfiguration = roadnet.ErrConfiguration

	// ErrUnreachableNode is returned by Spawn when the start node has no
	// route to the sink. It is a scenario error, not a skip.
	ErrUnreachableNode = roadnet.ErrUnreachableNode

	// ErrUnknownUnit indicates an id that is not active.
	ErrUnknownUnit = errors.New("sim: unknown or terminated unit")

	// ErrTickOrder indicates a tick index not greater than the previous one.
	ErrTickOrder = errors.New("sim: tick index must increase")
)
