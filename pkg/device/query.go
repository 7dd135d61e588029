package device

import (
	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
)

func ptr[T any](v T) *T {
	return &v
}

// QueryState reports the device state for a QUERY intent.
//
// A failing state getter short-circuits collection: the device reports
// status ERROR with the error text as errorCode and no trait state. An
// unreachable device reports status OFFLINE, again without trait
// state. Otherwise the full state of every registered trait is
// reported with status SUCCESS.
func (d *Device) QueryState() fulfillment.QueryDeviceState {
	d.mu.Lock()
	defer d.mu.Unlock()

	online := d.basic.IsOnline()

	var st fulfillment.DeviceState
	on, err := d.collectState(&st)
	if err != nil {
		return fulfillment.QueryDeviceState{
			On:        false,
			Online:    online,
			Status:    fulfillment.StatusError,
			ErrorCode: err.Error(),
		}
	}
	if !online {
		return fulfillment.QueryDeviceState{
			On:     true,
			Online: false,
			Status: fulfillment.StatusOffline,
		}
	}
	return fulfillment.QueryDeviceState{
		On:          on,
		Online:      true,
		Status:      fulfillment.StatusSuccess,
		DeviceState: st,
	}
}

// collectState fills st from every registered trait. The returned on
// value is the OnOff state, true for devices without the OnOff trait.
func (d *Device) collectState(st *fulfillment.DeviceState) (bool, error) {
	on := true

	if t := d.caps.appSelector; t != nil {
		app, err := t.CurrentApplication()
		if err != nil {
			return on, err
		}
		st.CurrentApplication = &app
	}

	if t := d.caps.armDisarm; t != nil {
		armed, err := t.IsArmed()
		if err != nil {
			return on, err
		}
		level, err := t.CurrentArmLevel()
		if err != nil {
			return on, err
		}
		allowance, err := t.ExitAllowance()
		if err != nil {
			return on, err
		}
		st.IsArmed = &armed
		st.CurrentArmLevel = &level
		st.ExitAllowance = &allowance
	}

	if t := d.caps.brightness; t != nil {
		brightness, err := t.Brightness()
		if err != nil {
			return on, err
		}
		st.Brightness = &brightness
	}

	if t := d.caps.colorSetting; t != nil {
		color, err := t.Color()
		if err != nil {
			return on, err
		}
		st.Color = &color
	}

	if t := d.caps.cook; t != nil {
		mode, err := t.CurrentCookingMode()
		if err != nil {
			return on, err
		}
		st.CurrentCookingMode = &mode
		preset, err := t.CurrentFoodPreset()
		if err != nil {
			return on, err
		}
		if preset != "" {
			st.CurrentFoodPreset = &preset
		}
		quantity, err := t.CurrentFoodQuantity()
		if err != nil {
			return on, err
		}
		if quantity != nil {
			st.CurrentFoodQuantity = ptr(float64(*quantity))
		}
		unit, err := t.CurrentFoodUnit()
		if err != nil {
			return on, err
		}
		if unit != "" {
			st.CurrentFoodUnit = &unit
		}
	}

	if t := d.caps.dispense; t != nil {
		items, err := t.DispenseItemsState()
		if err != nil {
			return on, err
		}
		st.DispenseItems = items
	}

	if t := d.caps.dock; t != nil {
		docked, err := t.IsDocked()
		if err != nil {
			return on, err
		}
		st.IsDocked = &docked
	}

	if t := d.caps.energyStorage; t != nil {
		descriptive, err := t.DescriptiveCapacityRemaining()
		if err != nil {
			return on, err
		}
		st.DescriptiveCapacityRemaining = &descriptive
		if st.CapacityRemaining, err = t.CapacityRemaining(); err != nil {
			return on, err
		}
		if st.CapacityUntilFull, err = t.CapacityUntilFull(); err != nil {
			return on, err
		}
		if st.IsCharging, err = t.IsCharging(); err != nil {
			return on, err
		}
		if st.IsPluggedIn, err = t.IsPluggedIn(); err != nil {
			return on, err
		}
	}

	if t := d.caps.fanSpeed; t != nil {
		var err error
		if st.CurrentFanSpeedSetting, err = t.CurrentFanSpeedSetting(); err != nil {
			return on, err
		}
		if st.CurrentFanSpeedPercent, err = t.CurrentFanSpeedPercent(); err != nil {
			return on, err
		}
	}

	if t := d.caps.fill; t != nil {
		filled, err := t.IsFilled()
		if err != nil {
			return on, err
		}
		st.IsFilled = &filled
		if st.CurrentFillLevel, err = t.CurrentFillLevel(); err != nil {
			return on, err
		}
		if st.CurrentFillPercent, err = t.CurrentFillPercent(); err != nil {
			return on, err
		}
	}

	if t := d.caps.humiditySetting; t != nil {
		setpoint, err := t.CurrentHumiditySetPoint()
		if err != nil {
			return on, err
		}
		ambient, err := t.CurrentHumidityAmbientPercent()
		if err != nil {
			return on, err
		}
		st.HumiditySetpointPercent = &setpoint
		st.HumidityAmbientPercent = &ambient
	}

	if t := d.caps.inputSelector; t != nil {
		input, err := t.CurrentInput()
		if err != nil {
			return on, err
		}
		st.CurrentInput = &input
	}

	if t := d.caps.lightEffects; t != nil {
		var err error
		if st.ActiveLightEffect, err = t.ActiveLightEffect(); err != nil {
			return on, err
		}
		if st.LightEffectEndUnixTimestampSec, err = t.LightEffectEndUnixTimestampSec(); err != nil {
			return on, err
		}
	}

	if t := d.caps.lockUnlock; t != nil {
		locked, err := t.IsLocked()
		if err != nil {
			return on, err
		}
		jammed, err := t.IsJammed()
		if err != nil {
			return on, err
		}
		st.IsLocked = &locked
		st.IsJammed = &jammed
	}

	if t := d.caps.mediaState; t != nil {
		var err error
		if st.ActivityState, err = t.CurrentActivityState(); err != nil {
			return on, err
		}
		if st.PlaybackState, err = t.CurrentPlaybackState(); err != nil {
			return on, err
		}
	}

	if t := d.caps.modes; t != nil {
		settings, err := t.CurrentModeSettings()
		if err != nil {
			return on, err
		}
		st.CurrentModeSetting = settings
	}

	if t := d.caps.networkControl; t != nil {
		enabled, err := t.IsNetworkEnabled()
		if err != nil {
			return on, err
		}
		st.NetworkEnabled = &enabled
		settings, err := t.NetworkSettings()
		if err != nil {
			return on, err
		}
		st.NetworkSettings = &settings
		guestEnabled, err := t.IsGuestNetworkEnabled()
		if err != nil {
			return on, err
		}
		st.GuestNetworkEnabled = &guestEnabled
		guestSettings, err := t.GuestNetworkSettings()
		if err != nil {
			return on, err
		}
		st.GuestNetworkSettings = &guestSettings
		connected, err := t.NumConnectedDevices()
		if err != nil {
			return on, err
		}
		st.NumConnectedDevices = &connected
		usage, err := t.NetworkUsageMB()
		if err != nil {
			return on, err
		}
		st.NetworkUsageMB = &usage
		limit, err := t.NetworkUsageLimitMB()
		if err != nil {
			return on, err
		}
		st.NetworkUsageLimitMB = &limit
		unlimited, err := t.IsNetworkUsageUnlimited()
		if err != nil {
			return on, err
		}
		st.NetworkUsageUnlimited = &unlimited
		download, err := t.LastNetworkDownloadSpeedTest()
		if err != nil {
			return on, err
		}
		st.LastNetworkDownloadSpeedTest = &download
		upload, err := t.LastNetworkUploadSpeedTest()
		if err != nil {
			return on, err
		}
		st.LastNetworkUploadSpeedTest = &upload
		if st.NetworkSpeedTestInProgress, err = t.IsNetworkSpeedTestInProgress(); err != nil {
			return on, err
		}
		if st.NetworkProfilesState, err = t.NetworkProfilesState(); err != nil {
			return on, err
		}
	}

	if t := d.caps.onOff; t != nil {
		isOn, err := t.IsOn()
		if err != nil {
			return on, err
		}
		on = isOn
	}

	if t := d.caps.openClose; t != nil {
		var err error
		if st.OpenPercent, err = t.OpenPercent(); err != nil {
			return on, err
		}
		if st.OpenState, err = t.CurrentOpenState(); err != nil {
			return on, err
		}
	}

	if t := d.caps.rotation; t != nil {
		degrees, err := t.RotationDegrees()
		if err != nil {
			return on, err
		}
		percent, err := t.RotationPercent()
		if err != nil {
			return on, err
		}
		st.RotationDegrees = &degrees
		st.RotationPercent = &percent
	}

	if t := d.caps.runCycle; t != nil {
		var err error
		if st.CurrentRunCycle, err = t.CurrentRunCycle(); err != nil {
			return on, err
		}
		total, err := t.CurrentTotalRemainingTime()
		if err != nil {
			return on, err
		}
		cycle, err := t.CurrentCycleRemainingTime()
		if err != nil {
			return on, err
		}
		st.CurrentTotalRemainingTime = &total
		st.CurrentCycleRemainingTime = &cycle
	}

	if t := d.caps.sensorState; t != nil {
		var err error
		if st.CurrentSensorStateData, err = t.CurrentSensorStates(); err != nil {
			return on, err
		}
	}

	if t := d.caps.softwareUpdate; t != nil {
		ts, err := t.LastSoftwareUpdateUnixTimestampSec()
		if err != nil {
			return on, err
		}
		st.LastSoftwareUpdateUnixTimestampSec = &ts
	}

	if t := d.caps.startStop; t != nil {
		running, err := t.IsRunning()
		if err != nil {
			return on, err
		}
		st.IsRunning = &running
		if st.IsPaused, err = t.IsPaused(); err != nil {
			return on, err
		}
		if st.ActiveZones, err = t.ActiveZones(); err != nil {
			return on, err
		}
	}

	if t := d.caps.statusReport; t != nil {
		var err error
		if st.CurrentStatusReport, err = t.CurrentStatusReports(); err != nil {
			return on, err
		}
	}

	if t := d.caps.temperatureControl; t != nil {
		setpoint, err := t.TemperatureSetpointCelsius()
		if err != nil {
			return on, err
		}
		ambient, err := t.TemperatureAmbientCelsius()
		if err != nil {
			return on, err
		}
		st.TemperatureSetpointCelsius = &setpoint
		st.TemperatureAmbientCelsius = &ambient
	}

	if t := d.caps.temperatureSetting; t != nil {
		mode, err := t.ActiveThermostatMode()
		if err != nil {
			return on, err
		}
		st.ActiveThermostatMode = &mode
		if st.TargetTempReachedEstimateUnixTimestampSec, err = t.TargetTempReachedEstimateUnixTimestampSec(); err != nil {
			return on, err
		}
		if st.ThermostatHumidityAmbient, err = t.ThermostatHumidityAmbient(); err != nil {
			return on, err
		}
		thermostat, err := t.ThermostatState()
		if err != nil {
			return on, err
		}
		st.ThermostatMode = &thermostat.Mode
		st.ThermostatTemperatureAmbient = &thermostat.AmbientCelsius
		if thermostat.Range {
			st.ThermostatTemperatureSetpointHigh = &thermostat.SetpointHighCelsius
			st.ThermostatTemperatureSetpointLow = &thermostat.SetpointLowCelsius
		} else {
			st.ThermostatTemperatureSetpoint = &thermostat.SetpointCelsius
		}
	}

	if t := d.caps.timer; t != nil {
		remaining, err := t.TimerRemainingSec()
		if err != nil {
			return on, err
		}
		// No timer running reports as -1.
		value := -1
		if remaining != nil {
			value = *remaining
		}
		st.TimerRemainingSec = &value
		if st.TimerPaused, err = t.IsTimerPaused(); err != nil {
			return on, err
		}
	}

	if t := d.caps.toggles; t != nil {
		settings, err := t.CurrentToggleSettings()
		if err != nil {
			return on, err
		}
		st.CurrentToggleSettings = settings
	}

	if t := d.caps.volume; t != nil {
		var err error
		if st.CurrentVolume, err = t.CurrentVolume(); err != nil {
			return on, err
		}
		if st.IsMuted, err = t.IsMuted(); err != nil {
			return on, err
		}
	}

	return on, nil
}
