package traits

// DeviceInfo carries manufacturer and version metadata reported in SYNC.
type DeviceInfo struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	HwVersion    string `json:"hwVersion"`
	SwVersion    string `json:"swVersion"`
}

// DeviceName holds the user-visible names of a device.
type DeviceName struct {
	// DefaultNames are manufacturer-provided names, not user settable.
	DefaultNames []string `json:"defaultNames"`
	// Name is the primary name of the device, as provided by the user.
	Name string `json:"name"`
	// Nicknames are additional user-provided names.
	Nicknames []string `json:"nicknames"`
}

// BasicDevice is the identity contract every device must implement,
// independent of any capability traits.
type BasicDevice interface {
	// DeviceInfo returns manufacturer and version metadata.
	DeviceInfo() DeviceInfo

	// DeviceName returns the device's names.
	DeviceName() DeviceName

	// RoomHint suggests which room the device is in. Empty string means no
	// hint.
	RoomHint() string

	// WillReportState reports whether the device pushes state changes via
	// Report State (true) or is query-only over QUERY (false).
	WillReportState() bool

	// IsOnline reports whether the device is currently reachable.
	IsOnline() bool
}

// Disconnector is implemented by devices that need to release resources
// when removed from the orchestrator. Optional.
type Disconnector interface {
	Disconnect()
}
