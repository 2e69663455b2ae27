// internal/config/normalize.go
package config

import (
	"github.com/tamzrod/periph-poller/internal/phy"
	"github.com/tamzrod/periph-poller/internal/status"
)

const (
	DefaultTickMs          = 16
	DefaultPHYName         = "net-phy"
	DefaultStatusTimeoutMs = 1000
	DefaultEveryTicks      = 60
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Session.TickMs == 0 {
		cfg.Session.TickMs = DefaultTickMs
	}

	if cfg.PHY.Name == "" {
		cfg.PHY.Name = DefaultPHYName
	}
	if cfg.PHY.InitPolls == 0 {
		cfg.PHY.InitPolls = phy.DefaultInitPolls
	}

	// Status export is opt-in; leave it alone when off.
	if !cfg.Status.Enabled() {
		return
	}

	if cfg.Status.TimeoutMs == 0 {
		cfg.Status.TimeoutMs = DefaultStatusTimeoutMs
	}
	if cfg.Status.EveryTicks == 0 {
		cfg.Status.EveryTicks = DefaultEveryTicks
	}
	if cfg.Status.DeviceName == "" {
		cfg.Status.DeviceName = cfg.PHY.Name
	}

	// ASCII already validated; truncate to what the name slots hold.
	if len(cfg.Status.DeviceName) > status.DeviceNameMaxChars {
		cfg.Status.DeviceName = cfg.Status.DeviceName[:status.DeviceNameMaxChars]
	}
}
