package examples

import (
	"errors"
	"testing"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

func TestLampExecute(t *testing.T) {
	lamp := NewLamp(LampConfig{ID: "lamp-1", Name: "Desk Lamp", Room: "office"})

	if _, err := lamp.Device().Execute(&fulfillment.OnOffCommand{On: true}); err != nil {
		t.Fatalf("Execute OnOff failed: %v", err)
	}
	if _, err := lamp.Device().Execute(&fulfillment.BrightnessAbsoluteCommand{Brightness: 40}); err != nil {
		t.Fatalf("Execute BrightnessAbsolute failed: %v", err)
	}

	state := lamp.Device().QueryState()
	if state.Status != fulfillment.StatusSuccess {
		t.Fatalf("status = %s, want SUCCESS", state.Status)
	}
	if !state.On {
		t.Error("lamp should be on")
	}
	if state.Brightness == nil || *state.Brightness != 40 {
		t.Errorf("brightness = %v, want 40", state.Brightness)
	}
}

func TestLampBrightnessClamped(t *testing.T) {
	lamp := NewLamp(LampConfig{ID: "lamp-1"})

	if err := lamp.SetBrightnessRelativePercent(50); err != nil {
		t.Fatalf("SetBrightnessRelativePercent failed: %v", err)
	}
	if got, _ := lamp.Brightness(); got != 100 {
		t.Errorf("brightness = %d, want 100 (clamped)", got)
	}

	if err := lamp.SetBrightnessAbsolute(150); !errors.Is(err, traits.ErrValueOutOfRange) {
		t.Errorf("SetBrightnessAbsolute(150) = %v, want valueOutOfRange", err)
	}
}

func TestLampOffline(t *testing.T) {
	lamp := NewLamp(LampConfig{ID: "lamp-1"})
	lamp.SetOnline(false)

	state := lamp.Device().QueryState()
	if state.Status != fulfillment.StatusOffline {
		t.Errorf("status = %s, want OFFLINE", state.Status)
	}
	if state.Online {
		t.Error("online should be false")
	}
}

func TestLockStateErrors(t *testing.T) {
	lock := NewLock(LockConfig{ID: "lock-1", Name: "Front Door"})

	if err := lock.SetLocked(true); err != nil {
		t.Fatalf("SetLocked(true) failed: %v", err)
	}
	if err := lock.SetLocked(true); !errors.Is(err, traits.ErrAlreadyLocked) {
		t.Errorf("double lock = %v, want alreadyLocked", err)
	}
	if err := lock.SetLocked(false); err != nil {
		t.Fatalf("SetLocked(false) failed: %v", err)
	}
	if err := lock.SetLocked(false); !errors.Is(err, traits.ErrAlreadyUnlocked) {
		t.Errorf("double unlock = %v, want alreadyUnlocked", err)
	}
}

func TestLockJammed(t *testing.T) {
	lock := NewLock(LockConfig{ID: "lock-1"})
	lock.SetJammed(true)

	if err := lock.SetLocked(true); !errors.Is(err, traits.ErrDeviceJammingDetected) {
		t.Errorf("jammed lock = %v, want deviceJammingDetected", err)
	}
	if jammed, _ := lock.IsJammed(); !jammed {
		t.Error("IsJammed should report true")
	}
}

func TestThermostatModes(t *testing.T) {
	therm := NewThermostat(ThermostatConfig{ID: "thermostat-1", Name: "Hallway"})

	t.Run("fixed setpoint", func(t *testing.T) {
		if _, err := therm.Device().Execute(&fulfillment.ThermostatTemperatureSetpointCommand{
			ThermostatTemperatureSetpoint: 22.5,
		}); err != nil {
			t.Fatalf("setpoint failed: %v", err)
		}

		state := therm.Device().QueryState()
		if state.ThermostatTemperatureSetpoint == nil || *state.ThermostatTemperatureSetpoint != 22.5 {
			t.Errorf("setpoint = %v, want 22.5", state.ThermostatTemperatureSetpoint)
		}
		if state.ThermostatTemperatureSetpointHigh != nil {
			t.Error("setpointHigh should be absent in fixed mode")
		}
	})

	t.Run("range rejected outside heatcool", func(t *testing.T) {
		err := therm.SetTemperatureSetRange(24, 18)
		if !errors.Is(err, traits.ErrNotSupported) {
			t.Errorf("SetTemperatureSetRange = %v, want notSupported", err)
		}
	})

	t.Run("heatcool range", func(t *testing.T) {
		if _, err := therm.Device().Execute(&fulfillment.ThermostatSetModeCommand{
			ThermostatMode: traits.ThermostatModeHeatCool,
		}); err != nil {
			t.Fatalf("set mode failed: %v", err)
		}
		if _, err := therm.Device().Execute(&fulfillment.ThermostatTemperatureSetRangeCommand{
			ThermostatTemperatureSetpointHigh: 24,
			ThermostatTemperatureSetpointLow:  18,
		}); err != nil {
			t.Fatalf("set range failed: %v", err)
		}

		state := therm.Device().QueryState()
		if state.ThermostatTemperatureSetpoint != nil {
			t.Error("fixed setpoint should be absent in heatcool mode")
		}
		if state.ThermostatTemperatureSetpointHigh == nil || *state.ThermostatTemperatureSetpointHigh != 24 {
			t.Errorf("setpointHigh = %v, want 24", state.ThermostatTemperatureSetpointHigh)
		}
		if state.ThermostatTemperatureSetpointLow == nil || *state.ThermostatTemperatureSetpointLow != 18 {
			t.Errorf("setpointLow = %v, want 18", state.ThermostatTemperatureSetpointLow)
		}
	})

	t.Run("unsupported mode", func(t *testing.T) {
		if err := therm.SetThermostatMode(traits.ThermostatModePurifier); !errors.Is(err, traits.ErrNotSupported) {
			t.Errorf("SetThermostatMode(purifier) = %v, want notSupported", err)
		}
	})
}

func TestThermostatSync(t *testing.T) {
	therm := NewThermostat(ThermostatConfig{ID: "thermostat-1", Name: "Hallway"})

	dev, err := therm.Device().Sync()
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if dev.Type != "action.devices.types.THERMOSTAT" {
		t.Errorf("type = %s", dev.Type)
	}
	if dev.Attributes.ThermostatTemperatureUnit == nil || *dev.Attributes.ThermostatTemperatureUnit != traits.TemperatureUnitCelsius {
		t.Errorf("unit = %v, want C", dev.Attributes.ThermostatTemperatureUnit)
	}
	if len(dev.Attributes.AvailableThermostatModes) != 4 {
		t.Errorf("modes = %v", dev.Attributes.AvailableThermostatModes)
	}
}
