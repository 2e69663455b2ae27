// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/periph-poller/internal/status"
)

// StatusTaskName is the registry name of the status export task.
const StatusTaskName = "status-export"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	// ------------------------------------------------------------
	// SESSION / PHY
	// ------------------------------------------------------------

	if cfg.Session.TickMs < 0 {
		return fmt.Errorf("session: tick_ms must be >= 0, got %d", cfg.Session.TickMs)
	}

	if cfg.PHY.Name == StatusTaskName {
		return fmt.Errorf("phy: name %q is reserved", StatusTaskName)
	}

	// ------------------------------------------------------------
	// TASK OVERRIDES
	// ------------------------------------------------------------

	seen := make(map[string]struct{})
	for i, t := range cfg.Tasks {
		if t.Name == "" {
			return fmt.Errorf("tasks[%d]: name required", i)
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("tasks[%d]: duplicate override for %q", i, t.Name)
		}
		seen[t.Name] = struct{}{}
	}

	// ------------------------------------------------------------
	// STATUS EXPORT (OPT-IN)
	// ------------------------------------------------------------

	s := cfg.Status

	// device_name sanity (ASCII only)
	for i := 0; i < len(s.DeviceName); i++ {
		if s.DeviceName[i] > 0x7F {
			return errors.New("status: device_name must contain ASCII characters only")
		}
	}

	switch s.Transport {
	case TransportNone:
		return nil
	case TransportModbus, TransportIngest:
	default:
		return fmt.Errorf("status: unknown transport %q", s.Transport)
	}

	if s.Endpoint == "" {
		return fmt.Errorf("status: transport %q requires an endpoint", s.Transport)
	}
	if s.TimeoutMs < 0 {
		return fmt.Errorf("status: timeout_ms must be >= 0, got %d", s.TimeoutMs)
	}
	if s.EveryTicks < 0 {
		return fmt.Errorf("status: every_ticks must be >= 0, got %d", s.EveryTicks)
	}

	// The block must fit in the 16-bit register space.
	if (uint32(s.Slot)+1)*status.SlotsPerDevice > 0x10000 {
		return fmt.Errorf("status: slot %d out of addressable range", s.Slot)
	}

	return nil
}
