package device

import (
	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// Sync describes the device for a SYNC intent: identity, registered
// traits and the attributes each trait advertises. An attribute getter
// failure aborts the description.
func (d *Device) Sync() (fulfillment.SyncDevice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev := fulfillment.SyncDevice{
		ID:              d.id,
		Type:            string(d.typ),
		Traits:          append([]traits.Trait(nil), d.traitList...),
		Name:            d.basic.DeviceName(),
		WillReportState: d.basic.WillReportState(),
		RoomHint:        d.basic.RoomHint(),
		DeviceInfo:      d.basic.DeviceInfo(),
	}
	if err := d.collectAttributes(&dev.Attributes); err != nil {
		return fulfillment.SyncDevice{}, err
	}
	return dev, nil
}

// collectAttributes fills attr from every registered trait.
func (d *Device) collectAttributes(attr *fulfillment.SyncAttributes) error {
	if t := d.caps.appSelector; t != nil {
		var err error
		if attr.AvailableApplications, err = t.AvailableApplications(); err != nil {
			return err
		}
	}

	if t := d.caps.armDisarm; t != nil {
		levels, err := t.AvailableArmLevels()
		if err != nil {
			return err
		}
		ordered, err := t.IsOrdered()
		if err != nil {
			return err
		}
		attr.AvailableArmLevels = &traits.AvailableArmLevels{
			Levels:  levels,
			Ordered: ordered,
		}
	}

	if t := d.caps.brightness; t != nil {
		commandOnly, err := t.CommandOnlyBrightness()
		if err != nil {
			return err
		}
		attr.CommandOnlyBrightness = &commandOnly
	}

	if t := d.caps.cameraStream; t != nil {
		protocols, err := t.SupportedCameraStreamProtocols()
		if err != nil {
			return err
		}
		needToken, err := t.NeedAuthToken()
		if err != nil {
			return err
		}
		attr.CameraStreamSupportedProtocols = protocols
		attr.CameraStreamNeedAuthToken = &needToken
	}

	if t := d.caps.channel; t != nil {
		var err error
		if attr.AvailableChannels, err = t.AvailableChannels(); err != nil {
			return err
		}
		if attr.CommandOnlyChannels, err = t.CommandOnlyChannels(); err != nil {
			return err
		}
	}

	if t := d.caps.colorSetting; t != nil {
		commandOnly, err := t.CommandOnlyColorSetting()
		if err != nil {
			return err
		}
		attr.CommandOnlyColorSetting = &commandOnly
		support, err := t.ColorModelSupport()
		if err != nil {
			return err
		}
		attr.ColorModel = support.ColorModel
		attr.ColorTemperatureRange = support.ColorTemperatureRange
	}

	if t := d.caps.cook; t != nil {
		var err error
		if attr.SupportedCookingModes, err = t.SupportedCookingModes(); err != nil {
			return err
		}
		if attr.FoodPresets, err = t.FoodPresets(); err != nil {
			return err
		}
	}

	if t := d.caps.dispense; t != nil {
		var err error
		if attr.SupportedDispenseItems, err = t.SupportedDispenseItems(); err != nil {
			return err
		}
		if attr.SupportedDispensePresets, err = t.SupportedDispensePresets(); err != nil {
			return err
		}
	}

	if t := d.caps.energyStorage; t != nil {
		queryOnly, err := t.QueryOnlyEnergyStorage()
		if err != nil {
			return err
		}
		attr.QueryOnlyEnergyStorage = &queryOnly
		unit, err := t.DistanceUnitForUX()
		if err != nil {
			return err
		}
		attr.EnergyStorageDistanceUnitForUX = &unit
		rechargeable, err := t.IsRechargeable()
		if err != nil {
			return err
		}
		attr.IsRechargeable = &rechargeable
	}

	if t := d.caps.fanSpeed; t != nil {
		var err error
		if attr.Reversible, err = t.IsReversible(); err != nil {
			return err
		}
		if attr.CommandOnlyFanSpeed, err = t.CommandOnlyFanSpeed(); err != nil {
			return err
		}
		if attr.AvailableFanSpeeds, err = t.AvailableFanSpeeds(); err != nil {
			return err
		}
		if attr.SupportsFanSpeedPercent, err = t.SupportsFanSpeedPercent(); err != nil {
			return err
		}
	}

	if t := d.caps.fill; t != nil {
		levels, err := t.AvailableFillLevels()
		if err != nil {
			return err
		}
		attr.AvailableFillLevels = &levels
	}

	if t := d.caps.humiditySetting; t != nil {
		var err error
		if attr.HumiditySetPointRange, err = t.HumiditySetPointRange(); err != nil {
			return err
		}
		if attr.CommandOnlyHumiditySetting, err = t.CommandOnlyHumiditySetting(); err != nil {
			return err
		}
		if attr.QueryOnlyHumiditySetting, err = t.QueryOnlyHumiditySetting(); err != nil {
			return err
		}
	}

	if t := d.caps.inputSelector; t != nil {
		var err error
		if attr.AvailableInputs, err = t.AvailableInputs(); err != nil {
			return err
		}
		if attr.CommandOnlyInputSelector, err = t.CommandOnlyInputSelector(); err != nil {
			return err
		}
		if attr.OrderedInputs, err = t.OrderedInputs(); err != nil {
			return err
		}
	}

	if t := d.caps.lightEffects; t != nil {
		var err error
		if attr.DefaultColorLoopDuration, err = t.DefaultColorLoopDuration(); err != nil {
			return err
		}
		if attr.DefaultSleepDuration, err = t.DefaultSleepDuration(); err != nil {
			return err
		}
		if attr.DefaultWakeDuration, err = t.DefaultWakeDuration(); err != nil {
			return err
		}
		if attr.SupportedEffects, err = t.SupportedEffects(); err != nil {
			return err
		}
	}

	if t := d.caps.mediaState; t != nil {
		var err error
		if attr.SupportActivityState, err = t.SupportActivityState(); err != nil {
			return err
		}
		if attr.SupportPlaybackState, err = t.SupportPlaybackState(); err != nil {
			return err
		}
	}

	if t := d.caps.modes; t != nil {
		var err error
		if attr.AvailableModes, err = t.AvailableModes(); err != nil {
			return err
		}
		if attr.CommandOnlyModes, err = t.CommandOnlyModes(); err != nil {
			return err
		}
		if attr.QueryOnlyModes, err = t.QueryOnlyModes(); err != nil {
			return err
		}
	}

	if t := d.caps.networkControl; t != nil {
		var err error
		if attr.SupportsEnablingGuestNetwork, err = t.SupportsEnablingGuestNetwork(); err != nil {
			return err
		}
		if attr.SupportsDisablingGuestNetwork, err = t.SupportsDisablingGuestNetwork(); err != nil {
			return err
		}
		if attr.SupportsGettingGuestNetworkPassword, err = t.SupportsGettingGuestNetworkPassword(); err != nil {
			return err
		}
		if attr.NetworkProfiles, err = t.NetworkProfiles(); err != nil {
			return err
		}
		if attr.SupportsEnablingNetworkProfile, err = t.SupportsEnablingNetworkProfile(); err != nil {
			return err
		}
		if attr.SupportsDisablingNetworkProfile, err = t.SupportsDisablingNetworkProfile(); err != nil {
			return err
		}
		if attr.SupportsNetworkDownloadSpeedTest, err = t.SupportsNetworkDownloadSpeedTest(); err != nil {
			return err
		}
		if attr.SupportsNetworkUploadSpeedTest, err = t.SupportsNetworkUploadSpeedTest(); err != nil {
			return err
		}
	}

	if t := d.caps.onOff; t != nil {
		var err error
		if attr.CommandOnlyOnOff, err = t.CommandOnlyOnOff(); err != nil {
			return err
		}
		if attr.QueryOnlyOnOff, err = t.QueryOnlyOnOff(); err != nil {
			return err
		}
	}

	if t := d.caps.openClose; t != nil {
		var err error
		if attr.DiscreteOnlyOpenClose, err = t.DiscreteOnlyOpenClose(); err != nil {
			return err
		}
		if attr.OpenDirection, err = t.SupportedOpeningDirections(); err != nil {
			return err
		}
		if attr.CommandOnlyOpenClose, err = t.CommandOnlyOpenClose(); err != nil {
			return err
		}
		if attr.QueryOnlyOpenClose, err = t.QueryOnlyOpenClose(); err != nil {
			return err
		}
	}

	if t := d.caps.rotation; t != nil {
		degrees, err := t.SupportsDegrees()
		if err != nil {
			return err
		}
		percent, err := t.SupportsPercent()
		if err != nil {
			return err
		}
		degreeRange, err := t.RotationDegreeRange()
		if err != nil {
			return err
		}
		attr.SupportsDegrees = &degrees
		attr.SupportsPercent = &percent
		attr.RotationDegreesRange = &degreeRange
		if attr.SupportsContinuousRotation, err = t.SupportsContinuousRotation(); err != nil {
			return err
		}
		if attr.CommandOnlyRotation, err = t.CommandOnlyRotation(); err != nil {
			return err
		}
	}

	if t := d.caps.scene; t != nil {
		var err error
		if attr.SceneReversible, err = t.IsReversible(); err != nil {
			return err
		}
	}

	if t := d.caps.sensorState; t != nil {
		var err error
		if attr.SensorStatesSupported, err = t.SupportedSensorStates(); err != nil {
			return err
		}
	}

	if t := d.caps.startStop; t != nil {
		var err error
		if attr.Pausable, err = t.IsPausable(); err != nil {
			return err
		}
		if attr.AvailableZones, err = t.AvailableZones(); err != nil {
			return err
		}
	}

	if t := d.caps.temperatureControl; t != nil {
		tempRange, err := t.TemperatureRange()
		if err != nil {
			return err
		}
		attr.TemperatureRange = &tempRange
		if attr.TemperatureStepCelsius, err = t.TemperatureStepCelsius(); err != nil {
			return err
		}
		unit, err := t.TemperatureUnitForUX()
		if err != nil {
			return err
		}
		attr.TemperatureUnitForUX = &unit
		if attr.CommandOnlyTemperatureControl, err = t.CommandOnlyTemperatureControl(); err != nil {
			return err
		}
		if attr.QueryOnlyTemperatureControl, err = t.QueryOnlyTemperatureControl(); err != nil {
			return err
		}
	}

	if t := d.caps.temperatureSetting; t != nil {
		var err error
		if attr.AvailableThermostatModes, err = t.AvailableThermostatModes(); err != nil {
			return err
		}
		if attr.ThermostatTemperatureRange, err = t.ThermostatTemperatureRange(); err != nil {
			return err
		}
		unit, err := t.ThermostatTemperatureUnit()
		if err != nil {
			return err
		}
		attr.ThermostatTemperatureUnit = &unit
		if attr.BufferRangeCelsius, err = t.BufferRangeCelsius(); err != nil {
			return err
		}
		if attr.CommandOnlyTemperatureSetting, err = t.CommandOnlyTemperatureSetting(); err != nil {
			return err
		}
		if attr.QueryOnlyTemperatureSetting, err = t.QueryOnlyTemperatureSetting(); err != nil {
			return err
		}
	}

	if t := d.caps.timer; t != nil {
		limit, err := t.MaxTimerLimitSec()
		if err != nil {
			return err
		}
		attr.MaxTimerLimitSec = &limit
		if attr.CommandOnlyTimer, err = t.CommandOnlyTimer(); err != nil {
			return err
		}
	}

	if t := d.caps.toggles; t != nil {
		var err error
		if attr.AvailableToggles, err = t.AvailableToggles(); err != nil {
			return err
		}
		if attr.CommandOnlyToggles, err = t.CommandOnlyToggles(); err != nil {
			return err
		}
		if attr.QueryOnlyToggles, err = t.QueryOnlyToggles(); err != nil {
			return err
		}
	}

	if t := d.caps.transportControl; t != nil {
		var err error
		if attr.TransportControlSupportedCommands, err = t.SupportedControlCommands(); err != nil {
			return err
		}
	}

	if t := d.caps.volume; t != nil {
		maxLevel, err := t.VolumeMaxLevel()
		if err != nil {
			return err
		}
		attr.VolumeMaxLevel = &maxLevel
		canMute, err := t.CanMuteAndUnmute()
		if err != nil {
			return err
		}
		attr.VolumeCanMuteAndUnmute = &canMute
		if attr.VolumeDefaultPercentage, err = t.VolumeDefaultPercentage(); err != nil {
			return err
		}
		if attr.LevelStepSize, err = t.LevelStepSize(); err != nil {
			return err
		}
		if attr.CommandOnlyVolume, err = t.CommandOnlyVolume(); err != nil {
			return err
		}
	}

	return nil
}
