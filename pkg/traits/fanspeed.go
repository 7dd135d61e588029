package traits

// AvailableFanSpeeds describes the speed settings supported by a device.
type AvailableFanSpeeds struct {
	// Speeds lists the supported speed settings.
	Speeds []FanSpeedSetting `json:"speeds"`
	// Ordered enables increase/decrease grammar in the order (increasing)
	// of the speeds array.
	Ordered bool `json:"ordered"`
}

// FanSpeedSetting is one named speed setting.
type FanSpeedSetting struct {
	// SpeedName is the internal name of the setting. Shared across all
	// languages.
	SpeedName string `json:"speed_name"`
	// SpeedValues holds the synonyms for the setting per language.
	SpeedValues []FanSpeedValue `json:"speed_values"`
}

// FanSpeedValue lists the synonyms for a speed setting in one language. The
// first synonym is the canonical name.
type FanSpeedValue struct {
	SpeedSynonym []string `json:"speed_synonym"`
	Lang         Language `json:"lang"`
}

// FanSpeed belongs to devices that support setting the speed of a fan, with
// settings such as low, medium, and high.
//
// ErrMaxSpeedReached and ErrMinSpeedReached report relative adjustments past
// the ends of the range.
type FanSpeed interface {
	// IsReversible is true if the device supports blowing in both
	// directions and accepts the Reverse command. nil means unspecified
	// (default false).
	IsReversible() (*bool, error)

	// CommandOnlyFanSpeed indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyFanSpeed() (*bool, error)

	// AvailableFanSpeeds describes the supported named speeds. Either this
	// or SupportsFanSpeedPercent must report a value, or both.
	AvailableFanSpeeds() (*AvailableFanSpeeds, error)

	// SupportsFanSpeedPercent is true if the device accepts speed
	// adjustment as a percentage from 0.0 to 100.0.
	SupportsFanSpeedPercent() (*bool, error)

	// CurrentFanSpeedSetting returns the internal name of the current
	// speed from the availableFanSpeeds attribute. Required when
	// AvailableFanSpeeds reports a value.
	CurrentFanSpeedSetting() (*string, error)

	// CurrentFanSpeedPercent returns the current speed percentage.
	// Required when SupportsFanSpeedPercent reports true.
	CurrentFanSpeedPercent() (*float64, error)

	// SetFanSpeedSetting sets the speed to a named setting.
	SetFanSpeedSetting(name string) error

	// SetFanSpeedPercent sets the speed to a percentage.
	SetFanSpeedPercent(percent float64) error

	// SetFanSpeedRelativeWeight adjusts the speed by a scaled amount whose
	// sign indicates direction. Only called for command-only devices.
	SetFanSpeedRelativeWeight(weight int) error

	// SetFanSpeedRelativePercent adjusts the speed by a percentage. Only
	// called for command-only devices.
	SetFanSpeedRelativePercent(percent float64) error

	// Reverse reverses the fan direction. Only called when IsReversible
	// reports true.
	Reverse() error
}
