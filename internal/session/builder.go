// internal/session/builder.go
package session

import (
	"log"
	"time"

	"github.com/tamzrod/periph-poller/internal/clock"
	cfg "github.com/tamzrod/periph-poller/internal/config"
	"github.com/tamzrod/periph-poller/internal/exporter"
	"github.com/tamzrod/periph-poller/internal/link"
	"github.com/tamzrod/periph-poller/internal/phy"
	"github.com/tamzrod/periph-poller/internal/poller"
	"github.com/tamzrod/periph-poller/internal/writer"
)

// Options overrides collaborators, mostly for tests.
type Options struct {
	Logger *log.Logger
	Clock  clock.Source
	// Client replaces the transport built from the status config.
	Client writer.EndpointClient
}

// Build constructs a session from a validated, normalized config and wires
// every task into its registry. Registration order is poll order:
// the PHY first, then the status exporter, so an export sees this tick's state.
// The returned closer releases the status transport.
func Build(c *cfg.Config, opts Options) (*Session, func() error, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewMonotonic()
	}

	interval := time.Duration(c.Session.TickMs) * time.Millisecond
	if interval <= 0 {
		interval = cfg.DefaultTickMs * time.Millisecond
	}

	s := &Session{
		interval: interval,
		registry: poller.New(logger),
		link:     link.NewSwitch(c.Network.Connected),
		log:      logger,
	}

	// ---- PHY ----
	phyTask := c.PHY.Name
	if phyTask == "" {
		phyTask = cfg.DefaultPHYName
	}
	s.phy = phy.New(phy.Config{
		Name:      phyTask,
		InitPolls: c.PHY.InitPolls,
		Clock:     clk,
		Link:      s.link,
		Logger:    logger,
	})
	s.phy.Init()
	s.registry.RegisterPoller(phyTask, s.phy)

	closer := func() error { return nil }

	// ---- status export (optional) ----
	if c.Status.Enabled() {
		plan, err := writer.BuildPlan(c.Status)
		if err != nil {
			return nil, nil, err
		}

		cli := opts.Client
		if cli == nil {
			cli, err = writer.BuildEndpointClient(c.Status)
			if err != nil {
				return nil, nil, err
			}
		}
		closer = cli.Close

		sw, err := writer.NewStatusWriter(plan, cli)
		if err != nil {
			_ = cli.Close()
			return nil, nil, err
		}

		s.exporter = exporter.New(s.phy, sw, c.Status.EveryTicks, logger).
			WithFaultCounter(s.registry).
			WithEnabled(func() bool { return s.registry.TaskEnabled(phyTask) })
		s.registry.RegisterPoller(cfg.StatusTaskName, s.exporter)
	}

	// ---- initial enable overrides ----
	for _, t := range c.Tasks {
		s.registry.SetTaskEnabled(t.Name, t.Enabled)
	}

	return s, closer, nil
}
