package traits

// StartStop covers devices that function differently when turned on and
// when started, such as washing machines that can be turned on and
// configured before starting operation. Devices that can pause will cease
// operation but continue from the same state on resume; restarting begins
// operation from the beginning. Some devices support running in specific
// zones, such as sprinklers with watering zones or vacuums that clean
// particular rooms.
type StartStop interface {
	// IsPausable reports whether the device can be paused during
	// operation. nil means unspecified (default false).
	IsPausable() (*bool, error)

	// AvailableZones lists the supported zone names, localized as set by
	// the user. nil when zones are not supported.
	AvailableZones() ([]string, error)

	// IsRunning reports whether the device is currently in operation.
	IsRunning() (bool, error)

	// IsPaused reports whether the device is explicitly paused. True
	// implies IsRunning is false but operation can be resumed.
	IsPaused() (*bool, error)

	// ActiveZones lists the zones in which the device is currently
	// running, from the available zones.
	ActiveZones() ([]string, error)

	// StartStop starts (true) or stops (false) the device, optionally in
	// the given zones.
	StartStop(start bool, zones []string) error

	// PauseUnpause pauses (true) or unpauses (false) operation. Only
	// called when IsPausable reports true.
	PauseUnpause(pause bool) error
}
