package traits

// TemperatureControl is for devices other than thermostats that control
// temperature within or around the device, such as ovens and refrigerators.
// Thermostat-style ambient control belongs to TemperatureSetting instead.
type TemperatureControl interface {
	// TemperatureRange is the supported temperature range of the device.
	TemperatureRange() (TemperatureRange, error)

	// TemperatureStepCelsius is the minimum adjustment interval the device
	// supports. nil means relative steps are calculated as a percentage of
	// the range.
	TemperatureStepCelsius() (*float64, error)

	// TemperatureUnitForUX is the unit used in responses to the user.
	TemperatureUnitForUX() (TemperatureUnit, error)

	// CommandOnlyTemperatureControl indicates one-way (true) or two-way
	// (false) communication. nil means unspecified (default false).
	CommandOnlyTemperatureControl() (*bool, error)

	// QueryOnlyTemperatureControl indicates the device can only be queried
	// for state. nil means unspecified (default false).
	QueryOnlyTemperatureControl() (*bool, error)

	// TemperatureSetpointCelsius is the current setpoint, within the
	// supported range. Required unless the device is query only.
	TemperatureSetpointCelsius() (float64, error)

	// TemperatureAmbientCelsius is the currently observed temperature,
	// within the supported range.
	TemperatureAmbientCelsius() (float64, error)

	// SetTemperature sets the temperature to a value within the supported
	// range, in degrees Celsius.
	SetTemperature(temperature float64) error
}
