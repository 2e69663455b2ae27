// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/periph-poller/internal/config"
	"github.com/tamzrod/periph-poller/internal/writer/ingest"
	wmodbus "github.com/tamzrod/periph-poller/internal/writer/modbus"
)

// BuildPlan converts the status section into a StatusPlan.
// Assumes config has already passed validation and normalization.
func BuildPlan(s cfg.StatusConfig) (StatusPlan, error) {
	if !s.Enabled() {
		return StatusPlan{}, errors.New("writer: status export is disabled")
	}

	return StatusPlan{
		Endpoint:   s.Endpoint,
		UnitID:     s.UnitID,
		BaseSlot:   s.Slot,
		DeviceName: s.DeviceName,
	}, nil
}

// BuildEndpointClient creates the client for the configured transport.
func BuildEndpointClient(s cfg.StatusConfig) (EndpointClient, error) {
	timeout := time.Duration(s.TimeoutMs) * time.Millisecond

	switch s.Transport {
	case cfg.TransportModbus:
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: s.Endpoint,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case cfg.TransportIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: s.Endpoint,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("writer: unsupported transport %q", s.Transport)
	}
}
