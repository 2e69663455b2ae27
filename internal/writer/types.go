// internal/writer/types.go
package writer

import "github.com/tamzrod/periph-poller/internal/status"

// AreaHoldingRegisters is the only area status blocks are written to.
const AreaHoldingRegisters byte = 3

// StatusPlan is where one device's status block lives.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16 // block index, not an address
	DeviceName string
}

// EndpointClient is the exact contract the status writer uses.
// Implemented by writer/modbus and writer/ingest.
type EndpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
	Close() error
}

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}
