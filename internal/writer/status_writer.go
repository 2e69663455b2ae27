// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/periph-poller/internal/status"
)

// deviceStatusWriter writes one device's status block.
//
// The first write, and the first write after any failure, re-asserts the
// whole block including the name. Otherwise only changed slots are sent.
type deviceStatusWriter struct {
	plan StatusPlan
	cli  EndpointClient

	needFull bool
	last     []uint16
	nameRegs []uint16
}

// NewStatusWriter builds a status writer for plan over cli.
func NewStatusWriter(plan StatusPlan, cli EndpointClient) (StatusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}
	if (uint32(plan.BaseSlot)+1)*status.SlotsPerDevice > 0x10000 {
		return nil, fmt.Errorf("status writer: slot %d out of range", plan.BaseSlot)
	}

	return &deviceStatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true,
		nameRegs: status.EncodeName(plan.DeviceName),
	}, nil
}

// WriteStatus delivers a device status snapshot into status memory.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil {
		return errors.New("status writer: disabled")
	}

	regs := status.Encode(s)
	base := sw.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		copy(regs[status.SlotDeviceNameStart:], sw.nameRegs)

		if err := sw.cli.WriteRegisters(AreaHoldingRegisters, sw.plan.UnitID, base, regs); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = append([]uint16(nil), regs[:status.SlotLiveEnd+1]...)
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: one write per run of changed live slots
	// ------------------------------------------------------------
	var errs []string

	for i := 0; i <= status.SlotLiveEnd; {
		if regs[i] == sw.last[i] {
			i++
			continue
		}
		j := i
		for j+1 <= status.SlotLiveEnd && regs[j+1] != sw.last[j+1] {
			j++
		}

		if err := sw.cli.WriteRegisters(
			AreaHoldingRegisters,
			sw.plan.UnitID,
			base+uint16(i),
			regs[i:j+1],
		); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", i, j, err))
		} else {
			copy(sw.last[i:j+1], regs[i:j+1])
		}
		i = j + 1
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *deviceStatusWriter) baseAddr() uint16 {
	// Each device owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}
