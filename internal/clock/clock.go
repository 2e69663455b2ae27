// internal/clock/clock.go
package clock

import (
	"sync/atomic"
	"time"
)

// Source yields a millisecond tick count.
// Values wrap at 2^32 like a host "ticks since init" counter.
type Source interface {
	NowMs() uint32
}

// Monotonic counts milliseconds since it was created.
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) NowMs() uint32 {
	return uint32(time.Since(m.start).Milliseconds())
}

// Manual is driven by hand. Safe for concurrent use.
type Manual struct {
	ms atomic.Uint32
}

func NewManual(startMs uint32) *Manual {
	m := &Manual{}
	m.ms.Store(startMs)
	return m
}

func (m *Manual) NowMs() uint32 { return m.ms.Load() }

func (m *Manual) Set(ms uint32) { m.ms.Store(ms) }

// Advance moves the clock forward and returns the new value.
func (m *Manual) Advance(d time.Duration) uint32 {
	return m.ms.Add(uint32(d.Milliseconds()))
}
