// internal/phy/driver.go
package phy

import (
	"errors"
	"log"

	"github.com/tamzrod/periph-poller/internal/clock"
	"github.com/tamzrod/periph-poller/internal/link"
)

// Config is everything the driver reads from outside.
type Config struct {
	Name      string
	InitPolls uint32       // 0 => DefaultInitPolls
	Clock     clock.Source // nil => monotonic clock
	Link      link.Signal  // nil => always disconnected
	Logger    *log.Logger  // nil => log.Default()
}

// Driver is a simulated network PHY.
//
// It is owned by whoever registered its Poll with the registry and is not
// safe for concurrent use. All methods tolerate a nil receiver.
type Driver struct {
	name      string
	initPolls uint32
	clock     clock.Source
	link      link.Signal
	log       *log.Logger

	state       State
	initCounter uint32
	linkUp      bool
	lastPollMs  uint32
	lastFault   error
}

// New returns a driver in the Uninitialized state.
func New(cfg Config) *Driver {
	d := &Driver{
		name:      cfg.Name,
		initPolls: cfg.InitPolls,
		clock:     cfg.Clock,
		link:      cfg.Link,
		log:       cfg.Logger,
		state:     Uninitialized,
	}
	if d.name == "" {
		d.name = "phy"
	}
	if d.initPolls == 0 {
		d.initPolls = DefaultInitPolls
	}
	if d.clock == nil {
		d.clock = clock.NewMonotonic()
	}
	if d.log == nil {
		d.log = log.Default()
	}
	return d
}

// Init (re)starts link bring-up from any state.
func (d *Driver) Init() {
	if d == nil {
		log.Printf("phy: init: invalid driver reference")
		return
	}

	d.log.Printf("phy initializing (dev=%s)", d.name)
	d.state = Initializing
	d.initCounter = 0
	d.linkUp = false
	d.lastFault = nil
	d.lastPollMs = d.clock.NowMs()
}

// Poll advances the driver by one tick. At most one transition per call.
func (d *Driver) Poll() {
	if d == nil {
		return
	}

	d.lastPollMs = d.clock.NowMs()

	switch d.state {
	case Uninitialized:
		// not started

	case Initializing:
		d.initCounter++
		if d.initCounter >= d.initPolls {
			d.state = Operational
			d.linkUp = d.connected()
			d.log.Printf("phy operational (dev=%s link=%s)", d.name, upDown(d.linkUp))
		}

	case Operational:
		d.linkUp = d.connected()

	case Error:
		// sticky until Init
	}
}

// Fail moves the driver into the Error state and records why.
func (d *Driver) Fail(reason error) {
	if d == nil {
		log.Printf("phy: fail: invalid driver reference")
		return
	}
	if reason == nil {
		reason = errors.New("phy: unspecified fault")
	}

	d.log.Printf("phy fault (dev=%s state=%s): %v", d.name, d.state, reason)
	d.state = Error
	d.linkUp = false
	d.lastFault = reason
}

// IsOperational gates traffic for downstream consumers.
func (d *Driver) IsOperational() bool {
	return d != nil && d.state == Operational
}

func (d *Driver) State() State {
	if d == nil {
		return Uninitialized
	}
	return d.state
}

func (d *Driver) LinkUp() bool {
	return d != nil && d.linkUp
}

func (d *Driver) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

func (d *Driver) Snapshot() Snapshot {
	if d == nil {
		return Snapshot{}
	}
	return Snapshot{
		State:       d.state,
		InitCounter: d.initCounter,
		LinkUp:      d.linkUp,
		LastPollMs:  d.lastPollMs,
		LastFault:   d.lastFault,
	}
}

func (d *Driver) connected() bool {
	return d.link != nil && d.link.Connected()
}

func upDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
