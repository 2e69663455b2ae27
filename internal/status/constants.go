// internal/status/constants.go
package status

// Device Status Block layout constants.
// These values define the export protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of register slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the derived device health.
const SlotHealthCode = 0

// SlotState holds the raw device state tag.
const SlotState = 1

// SlotLinkUp is 1 when the link is up, 0 otherwise.
const SlotLinkUp = 2

// SlotInitProgress holds the initialization progress counter (saturating).
const SlotInitProgress = 3

// SlotLastPollHi and SlotLastPollLo hold the last poll timestamp (ms), big-endian word order.
const SlotLastPollHi = 4
const SlotLastPollLo = 5

// SlotTaskFaults holds the registry-wide recovered fault count (saturating).
const SlotTaskFaults = 6

// SlotLiveEnd is the last live slot (inclusive).
const SlotLiveEnd = SlotTaskFaults

// ---- RESERVED RANGE ----

// Slots 7–11 are reserved for future use.
const SlotReservedStart = 7
const SlotReservedEnd = 11

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 12

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown: device never started.
const HealthUnknown uint16 = 0

// HealthOK: operational with link up.
const HealthOK uint16 = 1

// HealthError: device is in its error state.
const HealthError uint16 = 2

// HealthLinkDown: operational but the link is down.
const HealthLinkDown uint16 = 3

// HealthDisabled: export is running but the device task is disabled.
const HealthDisabled uint16 = 4

// HealthStarting: initialization in progress.
const HealthStarting uint16 = 5
