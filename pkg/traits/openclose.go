package traits

// OpenDirection is a direction in which a device can open.
type OpenDirection string

const (
	OpenDirectionUp    OpenDirection = "UP"
	OpenDirectionDown  OpenDirection = "DOWN"
	OpenDirectionLeft  OpenDirection = "LEFT"
	OpenDirectionRight OpenDirection = "RIGHT"
	OpenDirectionIn    OpenDirection = "IN"
	OpenDirectionOut   OpenDirection = "OUT"
)

// OpenState is the open state for one direction.
type OpenState struct {
	// OpenPercent indicates how far the device is opened, where 0 is
	// closed and 100 fully open.
	OpenPercent float64 `json:"openPercent"`
	// OpenDirection is the direction in which the device is opened.
	OpenDirection OpenDirection `json:"openDirection"`
}

// OpenClose belongs to devices that support opening and closing, in some
// cases partially or in more than one direction. For example, some blinds
// may open either to the left or to the right.
//
// ErrLockedState and ErrDeviceJammingDetected report failures to move.
type OpenClose interface {
	// DiscreteOnlyOpenClose is true when the device must either be fully
	// open or fully closed. nil means unspecified (default false).
	DiscreteOnlyOpenClose() (*bool, error)

	// SupportedOpeningDirections lists the directions in which the device
	// can open or close. nil when the device opens in a single direction.
	SupportedOpeningDirections() ([]OpenDirection, error)

	// CommandOnlyOpenClose indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyOpenClose() (*bool, error)

	// QueryOnlyOpenClose indicates the device can only be queried for
	// state. Sensors that only report open state set this to true. nil
	// means unspecified (default false).
	QueryOnlyOpenClose() (*bool, error)

	// OpenPercent indicates how far the device is opened, where 0 is
	// closed and 100 fully open.
	OpenPercent() (*float64, error)

	// CurrentOpenState lists the state for each supported open direction.
	// Only report values when multiple directions are supported. nil means
	// not reported.
	CurrentOpenState() ([]OpenState, error)

	// SetOpen opens the device to the given percentage. direction is empty
	// unless the device supports multiple directions and the user
	// specified one.
	SetOpen(percent float64, direction OpenDirection) error

	// SetOpenRelative adjusts the open state relative to the current
	// state. Only available on command-only devices.
	SetOpenRelative(relativePercent float64, direction OpenDirection) error
}
