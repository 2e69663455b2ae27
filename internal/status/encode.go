// internal/status/encode.go
package status

import "github.com/tamzrod/periph-poller/internal/phy"

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health       uint16
	State        uint16
	LinkUp       bool
	InitProgress uint16
	LastPollMs   uint32
	TaskFaults   uint16
}

// FromPhy derives a status snapshot from a PHY snapshot.
func FromPhy(s phy.Snapshot) Snapshot {
	out := Snapshot{
		State:        uint16(s.State),
		LinkUp:       s.LinkUp,
		InitProgress: sat16(uint64(s.InitCounter)),
		LastPollMs:   s.LastPollMs,
	}

	switch s.State {
	case phy.Initializing:
		out.Health = HealthStarting
	case phy.Operational:
		if s.LinkUp {
			out.Health = HealthOK
		} else {
			out.Health = HealthLinkDown
		}
	case phy.Error:
		out.Health = HealthError
	default:
		out.Health = HealthUnknown
	}

	return out
}

// WithTaskFaults returns s with the fault slot set (saturating).
func (s Snapshot) WithTaskFaults(n uint64) Snapshot {
	s.TaskFaults = sat16(n)
	return s
}

// Encode converts a Snapshot into a full device status block.
// Layout is protocol-locked. Name slots are left zero.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotState] = s.State
	if s.LinkUp {
		regs[SlotLinkUp] = 1
	}
	regs[SlotInitProgress] = s.InitProgress
	regs[SlotLastPollHi] = uint16(s.LastPollMs >> 16)
	regs[SlotLastPollLo] = uint16(s.LastPollMs)
	regs[SlotTaskFaults] = s.TaskFaults

	return regs
}

// EncodeName packs up to 16 ASCII characters into 8 registers.
// Each register stores two bytes in big-endian order; non-printable bytes become '?'.
func EncodeName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

func sat16(v uint64) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
