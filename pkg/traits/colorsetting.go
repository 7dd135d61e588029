package traits

// ColorModel is the full-spectrum color model supported by a device.
type ColorModel string

const (
	ColorModelRGB ColorModel = "rgb"
	ColorModelHSV ColorModel = "hsv"
)

// ColorModelSupport describes which color models a device supports. At
// least one field must be set.
type ColorModelSupport struct {
	// ColorModel is the full spectrum color model, if supported.
	ColorModel *ColorModel `json:"colorModel,omitempty"`
	// ColorTemperatureRange is the supported temperature range in Kelvin,
	// if supported.
	ColorTemperatureRange *ColorTemperatureRange `json:"colorTemperatureRange,omitempty"`
}

// ColorTemperatureRange is a supported color temperature range in Kelvin.
type ColorTemperatureRange struct {
	TemperatureMinK int `json:"temperatureMinK"`
	TemperatureMaxK int `json:"temperatureMaxK"`
}

// SpectrumHSV is a color in HSV space.
type SpectrumHSV struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Value      int `json:"value"`
}

// Color is the current color setting of a device. Exactly one field is
// expected to be set.
type Color struct {
	TemperatureK *int         `json:"temperatureK,omitempty"`
	SpectrumRGB  *int         `json:"spectrumRgb,omitempty"`
	SpectrumHSV  *SpectrumHSV `json:"spectrumHsv,omitempty"`
}

// ColorCommand is a color requested by a ColorAbsolute command. Exactly one
// field is set.
type ColorCommand struct {
	// Temperature is a color temperature in Kelvin.
	Temperature *int `json:"temperature,omitempty"`
	// SpectrumRGB is a spectrum value as a decimal integer.
	SpectrumRGB *int `json:"spectrumRGB,omitempty"`
	// SpectrumHSV is a spectrum value in HSV space.
	SpectrumHSV *SpectrumHSV `json:"spectrumHSV,omitempty"`
}

// ColorSetting applies to devices, such as smart lights, that can change
// color or color temperature.
type ColorSetting interface {
	// CommandOnlyColorSetting indicates one-way (true) or two-way (false)
	// communication.
	CommandOnlyColorSetting() (bool, error)

	// ColorModelSupport describes the supported color models.
	ColorModelSupport() (ColorModelSupport, error)

	// Color returns the color setting currently in use.
	Color() (Color, error)

	// SetColor sets a color.
	SetColor(command ColorCommand) error
}
