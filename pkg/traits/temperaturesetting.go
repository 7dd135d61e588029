package traits

// ThermostatMode is one of the operating modes of a thermostat.
type ThermostatMode string

const (
	ThermostatModeNone ThermostatMode = "none"
	// ThermostatModeOff disables heating and cooling activity.
	ThermostatModeOff ThermostatMode = "off"
	// ThermostatModeHeat means the device supports heating.
	ThermostatModeHeat ThermostatMode = "heat"
	// ThermostatModeCool means the device supports cooling.
	ThermostatModeCool ThermostatMode = "cool"
	// ThermostatModeOn restores the previous mode of the device.
	ThermostatModeOn ThermostatMode = "on"
	// ThermostatModeHeatCool maintains the heating/cooling target as a
	// range.
	ThermostatModeHeatCool ThermostatMode = "heatcool"
	// ThermostatModeAuto sets the temperature by a schedule or learned
	// behavior.
	ThermostatModeAuto ThermostatMode = "auto"
	// ThermostatModeFanOnly runs the fan without heat or cool activity.
	ThermostatModeFanOnly ThermostatMode = "fan-only"
	// ThermostatModePurifier is a purifying mode.
	ThermostatModePurifier ThermostatMode = "purifier"
	// ThermostatModeEco is an energy-saving mode.
	ThermostatModeEco ThermostatMode = "eco"
	// ThermostatModeDry is a dry mode.
	ThermostatModeDry ThermostatMode = "dry"
)

// ThermostatState is the current mode with its setpoint. Either Setpoint or
// the SetpointHigh/SetpointLow pair is populated, depending on whether the
// device maintains a fixed target or a range.
type ThermostatState struct {
	// Mode is the current mode, from the availableThermostatModes.
	Mode ThermostatMode
	// AmbientCelsius is the current observed temperature.
	AmbientCelsius float64
	// SetpointCelsius is the fixed target. Used when Range is false.
	SetpointCelsius float64
	// SetpointHighCelsius and SetpointLowCelsius bound the target range in
	// heatcool mode. Used when Range is true.
	SetpointHighCelsius float64
	SetpointLowCelsius  float64
	// Range selects between the fixed setpoint and the range setpoints.
	Range bool
}

// TemperatureSetting covers thermostats, handling both temperature points
// and modes.
type TemperatureSetting interface {
	// AvailableThermostatModes lists the modes this device supports.
	AvailableThermostatModes() ([]ThermostatMode, error)

	// ThermostatTemperatureRange is the supported temperature range in
	// degrees Celsius. nil means unspecified.
	ThermostatTemperatureRange() (*TemperatureRange, error)

	// ThermostatTemperatureUnit is the display unit the device defaults
	// to. Temperature information is reported in this unit.
	ThermostatTemperatureUnit() (TemperatureUnit, error)

	// BufferRangeCelsius is the minimum offset between heat-cool setpoints
	// when heatcool mode is supported. nil means the default of 2.
	BufferRangeCelsius() (*float64, error)

	// CommandOnlyTemperatureSetting indicates one-way (true) or two-way
	// (false) communication. nil means unspecified (default false).
	CommandOnlyTemperatureSetting() (*bool, error)

	// QueryOnlyTemperatureSetting indicates the device can only be queried
	// for state. nil means unspecified (default false).
	QueryOnlyTemperatureSetting() (*bool, error)

	// ActiveThermostatMode is the currently active mode, or
	// ThermostatModeNone.
	ActiveThermostatMode() (ThermostatMode, error)

	// TargetTempReachedEstimateUnixTimestampSec estimates when the target
	// temperature will be reached. nil means unspecified.
	TargetTempReachedEstimateUnixTimestampSec() (*int64, error)

	// ThermostatHumidityAmbient is the relative ambient humidity level, if
	// supported. nil means unspecified.
	ThermostatHumidityAmbient() (*float64, error)

	// ThermostatState returns the current mode with its fixed setpoint or
	// setpoint range.
	ThermostatState() (ThermostatState, error)

	// SetTemperatureSetpoint sets the target temperature. Supports up to
	// one decimal place.
	SetTemperatureSetpoint(setpointCelsius float64) error

	// SetTemperatureSetRange sets a target temperature range. Requires
	// heatcool mode support.
	SetTemperatureSetRange(setpointHighCelsius, setpointLowCelsius float64) error

	// SetThermostatMode sets the target operating mode, from the available
	// modes.
	SetThermostatMode(mode ThermostatMode) error

	// SetTemperatureRelativeDegree adjusts the target temperature by an
	// exact number of degrees. Only called for command-only devices.
	SetTemperatureRelativeDegree(relativeDegrees float64) error

	// SetTemperatureRelativeWeight adjusts the target temperature by an
	// ambiguous amount, from a little to a lot. Only called for
	// command-only devices.
	SetTemperatureRelativeWeight(weight float64) error
}
