// cmd/periphd/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/tamzrod/periph-poller/internal/config"
	"github.com/tamzrod/periph-poller/internal/session"
)

func init() {
	log.SetPrefix("periphd: ")
	log.SetOutput(os.Stderr)

	// Interactive runs get wall-clock stamps; supervisors add their own.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: periphd <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	// --------------------
	// Build session
	// --------------------

	sess, closeSession, err := session.Build(cfg, session.Options{Logger: log.Default()})
	if err != nil {
		log.Fatalf("session build failed: %v", err)
	}
	defer func() {
		if err := closeSession(); err != nil {
			log.Printf("status transport close failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// tick driver
	g.Go(func() error {
		return sess.Run(ctx)
	})

	// SIGUSR1 flaps the emulated network cable
	g.Go(func() error {
		usr1 := make(chan os.Signal, 1)
		signal.Notify(usr1, unix.SIGUSR1)
		defer signal.Stop(usr1)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-usr1:
				up := sess.Link().Toggle()
				log.Printf("network signal toggled (connected=%t)", up)
			}
		}
	})

	log.Printf("running (tick=%s phy=%s status=%q)", sess.Interval(), cfg.PHY.Name, cfg.Status.Transport)

	if err := g.Wait(); err != nil {
		log.Printf("session error: %v", err)
	}
	sess.Summary()
}
