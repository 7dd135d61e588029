package traits

// HumiditySetPointRange holds minimum and maximum humidity levels as
// percentages.
type HumiditySetPointRange struct {
	// MinPercent is the minimum humidity level. nil means default 0.
	MinPercent *int `json:"minPercent,omitempty"`
	// MaxPercent is the maximum humidity level. nil means default 100.
	MaxPercent *int `json:"maxPercent,omitempty"`
}

// HumiditySetting belongs to devices that support humidity settings such as
// humidifiers and dehumidifiers.
type HumiditySetting interface {
	// HumiditySetPointRange returns the supported humidity range. nil
	// means unspecified.
	HumiditySetPointRange() (*HumiditySetPointRange, error)

	// CommandOnlyHumiditySetting indicates one-way (true) or two-way
	// (false) communication. nil means unspecified (default false).
	CommandOnlyHumiditySetting() (*bool, error)

	// QueryOnlyHumiditySetting indicates the device can only be queried
	// for state. nil means unspecified.
	QueryOnlyHumiditySetting() (*bool, error)

	// CurrentHumiditySetPoint returns the target humidity percentage. Must
	// fall within the set point range.
	CurrentHumiditySetPoint() (int, error)

	// CurrentHumidityAmbientPercent returns the current ambient humidity
	// reading as a percentage.
	CurrentHumidityAmbientPercent() (int, error)

	// SetHumidity sets the humidity level to an absolute value within the
	// set point range.
	SetHumidity(humidity int) error

	// SetHumidityRelativePercent adjusts the humidity level by a
	// percentage.
	SetHumidityRelativePercent(percent int) error

	// SetHumidityRelativeWeight adjusts the humidity level by an ambiguous
	// amount, from a little to a lot.
	SetHumidityRelativeWeight(weight int) error
}
