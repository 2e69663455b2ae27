// internal/exporter/exporter.go
package exporter

import (
	"log"

	"github.com/tamzrod/periph-poller/internal/phy"
	"github.com/tamzrod/periph-poller/internal/status"
	"github.com/tamzrod/periph-poller/internal/writer"
)

// Source is a device whose state can be exported.
type Source interface {
	Name() string
	Snapshot() phy.Snapshot
}

// FaultCounter reports recovered task faults. *poller.Registry satisfies it.
type FaultCounter interface {
	TotalFaults() uint64
}

// EnabledFunc reports whether the source's own poll task is enabled.
type EnabledFunc func() bool

// Exporter is a poll task that pushes a device status block every N ticks.
// It runs on the registry goroutine, so it reads the device without locking.
type Exporter struct {
	src     Source
	w       writer.StatusWriter
	every   int
	faults  FaultCounter
	enabled EnabledFunc
	log     *log.Logger

	ticks  int
	writes uint64
	fails  uint64
}

// New returns an exporter that writes on the first poll and then every `every` polls.
func New(src Source, w writer.StatusWriter, every int, logger *log.Logger) *Exporter {
	if every <= 0 {
		every = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Exporter{src: src, w: w, every: every, log: logger}
}

// WithFaultCounter includes the counter's total in every exported block.
func (e *Exporter) WithFaultCounter(fc FaultCounter) *Exporter {
	e.faults = fc
	return e
}

// WithEnabled reports HealthDisabled while fn returns false.
func (e *Exporter) WithEnabled(fn EnabledFunc) *Exporter {
	e.enabled = fn
	return e
}

// Poll implements poller.Poller.
func (e *Exporter) Poll() {
	due := e.ticks%e.every == 0
	e.ticks++
	if !due {
		return
	}

	snap := status.FromPhy(e.src.Snapshot())
	if e.enabled != nil && !e.enabled() {
		snap.Health = status.HealthDisabled
	}
	if e.faults != nil {
		snap = snap.WithTaskFaults(e.faults.TotalFaults())
	}

	if err := e.w.WriteStatus(snap); err != nil {
		e.fails++
		e.log.Printf("status export failed (dev=%s): %v", e.src.Name(), err)
		return
	}
	e.writes++
}

// Stats returns successful and failed write counts.
func (e *Exporter) Stats() (writes, fails uint64) {
	return e.writes, e.fails
}
