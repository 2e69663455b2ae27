// internal/link/link.go
package link

import "sync/atomic"

// Signal reports whether the emulated console is connected to a network.
type Signal interface {
	Connected() bool
}

// Switch is a Signal set from configuration or flipped at runtime.
// It may be written from any goroutine.
type Switch struct {
	up atomic.Bool
}

func NewSwitch(connected bool) *Switch {
	s := &Switch{}
	s.up.Store(connected)
	return s
}

func (s *Switch) Connected() bool { return s.up.Load() }

func (s *Switch) Set(connected bool) { s.up.Store(connected) }

// Toggle flips the signal and returns the new value.
func (s *Switch) Toggle() bool {
	for {
		old := s.up.Load()
		if s.up.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
