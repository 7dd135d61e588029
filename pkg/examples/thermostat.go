package examples

import (
	"sync"

	"github.com/smarthome-protocol/smarthome-go/pkg/device"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// ThermostatConfig configures a simulated thermostat.
type ThermostatConfig struct {
	ID           string
	Name         string
	Room         string
	Manufacturer string
	Model        string
}

// Thermostat is a simulated heat/cool thermostat with a fixed setpoint
// or, in heatcool mode, a setpoint range.
type Thermostat struct {
	mu      sync.RWMutex
	config  ThermostatConfig
	online  bool
	mode    traits.ThermostatMode
	ambient float64

	setpoint     float64
	setpointHigh float64
	setpointLow  float64

	dev *device.Device
}

// NewThermostat creates a simulated thermostat. It starts online in
// heat mode at 20 degrees, reading 18.5 ambient.
func NewThermostat(config ThermostatConfig) *Thermostat {
	if config.Manufacturer == "" {
		config.Manufacturer = "Example Labs"
	}
	if config.Model == "" {
		config.Model = "Climate Hub"
	}

	t := &Thermostat{
		config:   config,
		online:   true,
		mode:     traits.ThermostatModeHeat,
		ambient:  18.5,
		setpoint: 20,
	}
	t.dev = device.New(config.ID, device.TypeThermostat, t)
	t.dev.SetTemperatureSetting(t)
	return t
}

// Device returns the registered device handle.
func (t *Thermostat) Device() *device.Device {
	return t.dev
}

// SetOnline forces the thermostat online or offline.
func (t *Thermostat) SetOnline(online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.online = online
}

// SetAmbient sets the simulated observed temperature.
func (t *Thermostat) SetAmbient(celsius float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ambient = celsius
}

func (t *Thermostat) DeviceInfo() traits.DeviceInfo {
	return traits.DeviceInfo{
		Manufacturer: t.config.Manufacturer,
		Model:        t.config.Model,
		HwVersion:    "2.0",
		SwVersion:    "5.0.1",
	}
}

func (t *Thermostat) DeviceName() traits.DeviceName {
	return traits.DeviceName{Name: t.config.Name}
}

func (t *Thermostat) RoomHint() string { return t.config.Room }

func (t *Thermostat) WillReportState() bool { return true }

func (t *Thermostat) IsOnline() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.online
}

func (t *Thermostat) AvailableThermostatModes() ([]traits.ThermostatMode, error) {
	return []traits.ThermostatMode{
		traits.ThermostatModeOff,
		traits.ThermostatModeHeat,
		traits.ThermostatModeCool,
		traits.ThermostatModeHeatCool,
	}, nil
}

func (t *Thermostat) ThermostatTemperatureRange() (*traits.TemperatureRange, error) {
	return &traits.TemperatureRange{MinThresholdCelsius: 5, MaxThresholdCelsius: 30}, nil
}

func (t *Thermostat) ThermostatTemperatureUnit() (traits.TemperatureUnit, error) {
	return traits.TemperatureUnitCelsius, nil
}

func (t *Thermostat) BufferRangeCelsius() (*float64, error) { return nil, nil }

func (t *Thermostat) CommandOnlyTemperatureSetting() (*bool, error) { return nil, nil }

func (t *Thermostat) QueryOnlyTemperatureSetting() (*bool, error) { return nil, nil }

func (t *Thermostat) ActiveThermostatMode() (traits.ThermostatMode, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mode, nil
}

func (t *Thermostat) TargetTempReachedEstimateUnixTimestampSec() (*int64, error) {
	return nil, nil
}

func (t *Thermostat) ThermostatHumidityAmbient() (*float64, error) { return nil, nil }

func (t *Thermostat) ThermostatState() (traits.ThermostatState, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state := traits.ThermostatState{
		Mode:           t.mode,
		AmbientCelsius: t.ambient,
	}
	if t.mode == traits.ThermostatModeHeatCool {
		state.Range = true
		state.SetpointHighCelsius = t.setpointHigh
		state.SetpointLowCelsius = t.setpointLow
	} else {
		state.SetpointCelsius = t.setpoint
	}
	return state, nil
}

func (t *Thermostat) SetTemperatureSetpoint(setpointCelsius float64) error {
	if setpointCelsius < 5 || setpointCelsius > 30 {
		return traits.ErrValueOutOfRange
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setpoint = setpointCelsius
	return nil
}

func (t *Thermostat) SetTemperatureSetRange(setpointHighCelsius, setpointLowCelsius float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode != traits.ThermostatModeHeatCool {
		return traits.ErrNotSupported
	}
	t.setpointHigh = setpointHighCelsius
	t.setpointLow = setpointLowCelsius
	return nil
}

func (t *Thermostat) SetThermostatMode(mode traits.ThermostatMode) error {
	switch mode {
	case traits.ThermostatModeOff, traits.ThermostatModeHeat,
		traits.ThermostatModeCool, traits.ThermostatModeHeatCool:
	default:
		return traits.ErrNotSupported
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = mode
	return nil
}

func (t *Thermostat) SetTemperatureRelativeDegree(relativeDegrees float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setpoint += relativeDegrees
	return nil
}

func (t *Thermostat) SetTemperatureRelativeWeight(weight float64) error {
	// A weight step maps to half a degree.
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setpoint += weight * 0.5
	return nil
}
