// internal/session/session.go
package session

import (
	"log"
	"time"

	"github.com/tamzrod/periph-poller/internal/exporter"
	"github.com/tamzrod/periph-poller/internal/link"
	"github.com/tamzrod/periph-poller/internal/phy"
	"github.com/tamzrod/periph-poller/internal/poller"
)

// Session is one emulated console: it owns the poll registry and every
// device registered with it.
type Session struct {
	interval time.Duration
	registry *poller.Registry
	link     *link.Switch
	phy      *phy.Driver
	exporter *exporter.Exporter // nil when status export is off
	log      *log.Logger

	ticks uint64
}

// Tick runs one registry pass.
func (s *Session) Tick() poller.PassReport {
	s.ticks++
	return s.registry.PollAll()
}

func (s *Session) Ticks() uint64                { return s.ticks }
func (s *Session) Interval() time.Duration      { return s.interval }
func (s *Session) Registry() *poller.Registry   { return s.registry }
func (s *Session) Link() *link.Switch           { return s.link }
func (s *Session) PHY() *phy.Driver             { return s.phy }
func (s *Session) Exporter() *exporter.Exporter { return s.exporter }
