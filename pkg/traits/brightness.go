package traits

// Brightness controls absolute and relative brightness in a normalized range
// from 0 to 100. Individual lights may not support every point in the range.
type Brightness interface {
	// CommandOnlyBrightness indicates one-way (true) or two-way (false)
	// communication. True if the device cannot respond to QUERY or Report
	// State for this trait.
	CommandOnlyBrightness() (bool, error)

	// Brightness returns the current brightness level.
	Brightness() (int, error)

	// SetBrightnessAbsolute sets a new absolute brightness percentage.
	SetBrightnessAbsolute(brightness int) error

	// SetBrightnessRelativePercent changes brightness by an exact
	// percentage.
	SetBrightnessRelativePercent(percent int) error

	// SetBrightnessRelativeWeight changes brightness by an ambiguous
	// amount, scaled to an integer from 0 to 5 with the sign indicating
	// direction.
	SetBrightnessRelativeWeight(weight int) error
}
