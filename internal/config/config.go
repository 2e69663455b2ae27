// internal/config/config.go
package config

type Config struct {
	Session SessionConfig `yaml:"session"`
	Network NetworkConfig `yaml:"network"`
	PHY     PHYConfig     `yaml:"phy"`
	Tasks   []TaskConfig  `yaml:"tasks"`
	Status  StatusConfig  `yaml:"status"`
}

// ---- SESSION ----

type SessionConfig struct {
	TickMs int `yaml:"tick_ms"` // tick driver cadence
}

// ---- NETWORK ----

type NetworkConfig struct {
	Connected bool `yaml:"connected"` // initial link signal
}

// ---- PHY ----

type PHYConfig struct {
	Name      string `yaml:"name"`       // poll task name
	InitPolls uint32 `yaml:"init_polls"` // 0 => reference threshold
}

// ---- TASK OVERRIDES ----

// TaskConfig sets the initial enabled flag of a registered task by name.
type TaskConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// ---- STATUS EXPORT ----

type StatusConfig struct {
	Transport  string `yaml:"transport"` // "" (off) | "modbus" | "ingest"
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Slot       uint16 `yaml:"slot"` // block index; address = slot * SlotsPerDevice
	TimeoutMs  int    `yaml:"timeout_ms"`
	DeviceName string `yaml:"device_name"`
	EveryTicks int    `yaml:"every_ticks"`
}

const (
	TransportNone   = ""
	TransportModbus = "modbus"
	TransportIngest = "ingest"
)

// Enabled reports whether status export is configured.
func (s StatusConfig) Enabled() bool {
	return s.Transport != TransportNone
}
