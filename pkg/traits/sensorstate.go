package traits

// SupportedSensorState describes one sensing capability of a device. Each
// sensor must have at least a descriptive or a numeric capability; when both
// are reported the numeric value is preferred.
type SupportedSensorState struct {
	// Name is the sensor type.
	Name string `json:"name"`
	// DescriptiveCapabilities describes the sensor's qualitative states.
	DescriptiveCapabilities *DescriptiveCapabilities `json:"descriptiveCapabilities,omitempty"`
	// NumericCapabilities describes the numeric values the sensor reports.
	NumericCapabilities *NumericCapabilities `json:"numericCapabilities,omitempty"`
}

// DescriptiveCapabilities lists the available qualitative states of a
// sensor. The "unknown" state is implicitly supported when the sensor does
// not return a value.
type DescriptiveCapabilities struct {
	AvailableStates []string `json:"availableStates"`
}

// NumericCapabilities describes the numeric values a sensor can report.
type NumericCapabilities struct {
	RawValueUnit string `json:"rawValueUnit"`
}

// CurrentSensorState is the current reading of one sensor.
type CurrentSensorState struct {
	// Name matches a value from sensorStatesSupported.
	Name string `json:"name"`
	// CurrentSensorState is the qualitative state, matching a value from
	// sensorStatesSupported. Empty when not reported.
	CurrentSensorState string `json:"currentSensorState,omitempty"`
	// RawValue is the numeric sensor value. nil when not reported.
	RawValue *float64 `json:"rawValue,omitempty"`
}

// SensorState covers both quantitative measurement (for example air quality
// index or smoke level) and qualitative state (for example whether the smoke
// level is low or high).
type SensorState interface {
	// SupportedSensorStates lists the sensing capabilities of the device.
	SupportedSensorStates() ([]SupportedSensorState, error)

	// CurrentSensorStates lists the current sensor readings.
	CurrentSensorStates() ([]CurrentSensorState, error)
}
