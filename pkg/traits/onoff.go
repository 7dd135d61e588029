package traits

// OnOff is the basic on and off functionality for any device that has binary
// on and off, including plugs and switches.
type OnOff interface {
	// CommandOnlyOnOff indicates the device can only be controlled through
	// commands and cannot be queried for state. nil means unspecified
	// (default false).
	CommandOnlyOnOff() (*bool, error)

	// QueryOnlyOnOff indicates the device can only be queried for state and
	// cannot be controlled. nil means unspecified (default false).
	QueryOnlyOnOff() (*bool, error)

	// IsOn reports whether the device is on.
	IsOn() (bool, error)

	// SetOn turns the device on or off.
	SetOn(on bool) error
}
