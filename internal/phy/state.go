// internal/phy/state.go
package phy

import "fmt"

// State is the PHY driver state. Values are stable and exported verbatim
// into the status block.
type State uint32

const (
	// Uninitialized: Init has not been called.
	Uninitialized State = 0
	// Initializing: link bring-up in progress.
	Initializing State = 1
	// Operational: ready; link may still flap up/down.
	Operational State = 2
	// Error is absorbing. Only Init leaves it.
	Error State = 3
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Operational:
		return "operational"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", uint32(s))
	}
}

// DefaultInitPolls is the number of polls spent in Initializing.
const DefaultInitPolls = 3

// Snapshot is a copy of the driver state at one point in time.
type Snapshot struct {
	State       State
	InitCounter uint32
	LinkUp      bool
	LastPollMs  uint32
	LastFault   error
}
