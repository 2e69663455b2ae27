// internal/session/runner.go
package session

import (
	"context"
	"time"
)

// Run ticks the session at its interval until ctx is done.
// One goroutine. No overlap: a slow pass delays the next tick, it never doubles up.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rep := s.Tick()
			if n := len(rep.Faults); n > 0 {
				s.log.Printf("tick %d: %d poll task fault(s)", s.ticks, n)
			}
		}
	}
}

// Summary logs one line per task. Called on shutdown.
func (s *Session) Summary() {
	for _, t := range s.registry.Tasks() {
		s.log.Printf("poll task summary (task=%s enabled=%t runs=%d faults=%d)",
			t.Name, t.Enabled, t.Runs, t.Faults)
	}
	if s.exporter != nil {
		w, f := s.exporter.Stats()
		s.log.Printf("status export summary (writes=%d fails=%d)", w, f)
	}
	s.log.Printf("session stopped after %d ticks (phy=%s link=%t)", s.ticks, s.phy.State(), s.phy.LinkUp())
}
