package traits

// CurrentStatusReport is one error or exception status of a device or a
// related device in the same group.
type CurrentStatusReport struct {
	// Blocking is true if the status blocks further command execution.
	Blocking bool `json:"blocking"`
	// DeviceTarget is the ID of the target device.
	DeviceTarget string `json:"deviceTarget"`
	// Priority of this status. The lower the value the higher the
	// priority, with 0 the highest. Statuses are reported from highest to
	// lowest priority.
	Priority int `json:"priority"`
	// StatusCode is the current error or exception code of the device.
	StatusCode string `json:"statusCode,omitempty"`
}

// StatusReport reports the current status of a specific device or a
// connected group of devices, for example a security system whose related
// devices are individual sensors. It aggregates collective status but does
// not replace individual addressing; every device reachable by the platform
// should appear separately in SYNC.
type StatusReport interface {
	// CurrentStatusReports lists the error or exception statuses of the
	// device and any related device IDs.
	CurrentStatusReports() ([]CurrentStatusReport, error)
}
