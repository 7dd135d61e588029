package device

import (
	"fmt"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// Execute routes a decoded command to the matching capability and
// returns the state read back after the command. Errors carrying a
// traits.ErrorCode report protocol error codes; any other error is an
// internal fault.
//
// Execute panics when the command belongs to a trait that was never
// registered on this device: the platform only sends commands for
// advertised traits, so such a command means the registration and the
// SYNC response have diverged.
func (d *Device) Execute(cmd fulfillment.Command) (*fulfillment.CommandStates, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	states := &fulfillment.CommandStates{Online: true}
	if err := d.dispatch(cmd, states); err != nil {
		return nil, err
	}
	return states, nil
}

func (d *Device) unsupported(name fulfillment.CommandName) {
	panic(fmt.Sprintf("device %s: unsupported command %s", d.id, name))
}

func (d *Device) dispatch(cmd fulfillment.Command, states *fulfillment.CommandStates) error {
	switch c := cmd.(type) {
	case *fulfillment.AppInstallCommand:
		if d.caps.appSelector == nil {
			d.unsupported(c.Name())
		}
		if c.NewApplication != "" {
			return d.caps.appSelector.AppInstallByKey(c.NewApplication)
		}
		return d.caps.appSelector.AppInstallByName(c.NewApplicationName)

	case *fulfillment.AppSearchCommand:
		if d.caps.appSelector == nil {
			d.unsupported(c.Name())
		}
		if c.NewApplication != "" {
			return d.caps.appSelector.AppSearchByKey(c.NewApplication)
		}
		return d.caps.appSelector.AppSearchByName(c.NewApplicationName)

	case *fulfillment.AppSelectCommand:
		if d.caps.appSelector == nil {
			d.unsupported(c.Name())
		}
		if c.NewApplication != "" {
			return d.caps.appSelector.AppSelectByKey(c.NewApplication)
		}
		return d.caps.appSelector.AppSelectByName(c.NewApplicationName)

	case *fulfillment.ArmDisarmCommand:
		if d.caps.armDisarm == nil {
			d.unsupported(c.Name())
		}
		// A present cancel parameter settles the command either way; a
		// false cancel is a no-op rather than an arm request.
		if c.Cancel != nil {
			if *c.Cancel {
				return d.caps.armDisarm.CancelArm()
			}
			return nil
		}
		if c.ArmLevel != "" {
			return d.caps.armDisarm.ArmWithLevel(c.Arm, c.ArmLevel)
		}
		return d.caps.armDisarm.Arm(c.Arm)

	case *fulfillment.BrightnessAbsoluteCommand:
		if d.caps.brightness == nil {
			d.unsupported(c.Name())
		}
		return d.caps.brightness.SetBrightnessAbsolute(c.Brightness)

	case *fulfillment.BrightnessRelativeCommand:
		if d.caps.brightness == nil {
			d.unsupported(c.Name())
		}
		if c.BrightnessRelativePercent != nil {
			if err := d.caps.brightness.SetBrightnessRelativePercent(*c.BrightnessRelativePercent); err != nil {
				return err
			}
		}
		if c.BrightnessRelativeWeight != nil {
			return d.caps.brightness.SetBrightnessRelativeWeight(*c.BrightnessRelativeWeight)
		}
		return nil

	case *fulfillment.GetCameraStreamCommand:
		if d.caps.cameraStream == nil {
			d.unsupported(c.Name())
		}
		desc, err := d.caps.cameraStream.GetCameraStream(c.StreamToChromecast, c.SupportedStreamProtocols)
		if err != nil {
			return err
		}
		states.CameraStreamAuthToken = desc.AuthToken
		states.CameraStreamProtocol = desc.Protocol
		if desc.WebRTC != nil {
			states.CameraStreamSignalingURL = desc.WebRTC.SignalingURL
			states.CameraStreamOffer = desc.WebRTC.Offer
			states.CameraStreamICEServers = desc.WebRTC.ICEServers
		}
		if desc.Access != nil {
			states.CameraStreamAccessURL = desc.Access.AccessURL
			states.CameraStreamReceiverAppID = desc.Access.ReceiverAppID
		}
		return nil

	case *fulfillment.SelectChannelCommand:
		if d.caps.channel == nil {
			d.unsupported(c.Name())
		}
		if c.ChannelCode != "" {
			return d.caps.channel.SelectChannel(c.ChannelCode, c.ChannelName, c.ChannelNumber)
		}
		return d.caps.channel.SelectChannelByNumber(c.ChannelNumber)

	case *fulfillment.RelativeChannelCommand:
		if d.caps.channel == nil {
			d.unsupported(c.Name())
		}
		return d.caps.channel.SelectChannelRelative(c.RelativeChannelChange)

	case *fulfillment.ReturnChannelCommand:
		if d.caps.channel == nil {
			d.unsupported(c.Name())
		}
		return d.caps.channel.ReturnToLastChannel()

	case *fulfillment.ColorAbsoluteCommand:
		if d.caps.colorSetting == nil {
			d.unsupported(c.Name())
		}
		return d.caps.colorSetting.SetColor(c.Color)

	case *fulfillment.CookCommand:
		if d.caps.cook == nil {
			d.unsupported(c.Name())
		}
		if !c.Start {
			return d.caps.cook.StopCooking()
		}
		return d.caps.cook.StartCooking(traits.CookingConfig{
			CookingMode: c.CookingMode,
			FoodPreset:  c.FoodPreset,
			Quantity:    c.Quantity,
			Unit:        c.Unit,
		})

	case *fulfillment.DispenseCommand:
		if d.caps.dispense == nil {
			d.unsupported(c.Name())
		}
		if c.Item != "" {
			amount := 0
			if c.Amount != nil {
				amount = *c.Amount
			}
			return d.caps.dispense.DispenseAmount(c.Item, amount, c.Unit)
		}
		if c.PresetName != "" {
			return d.caps.dispense.DispensePreset(c.PresetName)
		}
		return d.caps.dispense.DispenseDefault()

	case *fulfillment.DockCommand:
		if d.caps.dock == nil {
			d.unsupported(c.Name())
		}
		return d.caps.dock.DockDevice()

	case *fulfillment.ChargeCommand:
		if d.caps.energyStorage == nil {
			d.unsupported(c.Name())
		}
		return d.caps.energyStorage.Charge(c.Charge)

	case *fulfillment.SetFanSpeedCommand:
		if d.caps.fanSpeed == nil {
			d.unsupported(c.Name())
		}
		if c.FanSpeed != "" {
			return d.caps.fanSpeed.SetFanSpeedSetting(c.FanSpeed)
		}
		if c.FanSpeedPercent != nil {
			return d.caps.fanSpeed.SetFanSpeedPercent(*c.FanSpeedPercent)
		}
		return nil

	case *fulfillment.SetFanSpeedRelativeCommand:
		if d.caps.fanSpeed == nil {
			d.unsupported(c.Name())
		}
		// Weight takes precedence when both are present.
		if c.FanSpeedRelativeWeight != nil {
			return d.caps.fanSpeed.SetFanSpeedRelativeWeight(*c.FanSpeedRelativeWeight)
		}
		if c.FanSpeedRelativePercent != nil {
			return d.caps.fanSpeed.SetFanSpeedRelativePercent(*c.FanSpeedRelativePercent)
		}
		return nil

	case *fulfillment.ReverseCommand:
		if d.caps.fanSpeed == nil {
			d.unsupported(c.Name())
		}
		return d.caps.fanSpeed.Reverse()

	case *fulfillment.FillCommand:
		if d.caps.fill == nil {
			d.unsupported(c.Name())
		}
		if c.FillLevel != "" {
			return d.caps.fill.FillToLevel(c.FillLevel)
		}
		if c.FillPercent != nil {
			return d.caps.fill.FillToPercent(*c.FillPercent)
		}
		return d.caps.fill.SetFill(c.Fill)

	case *fulfillment.SetHumidityCommand:
		if d.caps.humiditySetting == nil {
			d.unsupported(c.Name())
		}
		return d.caps.humiditySetting.SetHumidity(c.Humidity)

	case *fulfillment.HumidityRelativeCommand:
		if d.caps.humiditySetting == nil {
			d.unsupported(c.Name())
		}
		if c.HumidityRelativePercent != nil {
			return d.caps.humiditySetting.SetHumidityRelativePercent(*c.HumidityRelativePercent)
		}
		if c.HumidityRelativeWeight != nil {
			return d.caps.humiditySetting.SetHumidityRelativeWeight(*c.HumidityRelativeWeight)
		}
		return nil

	case *fulfillment.SetInputCommand:
		if d.caps.inputSelector == nil {
			d.unsupported(c.Name())
		}
		return d.caps.inputSelector.SetInput(c.NewInput)

	case *fulfillment.NextInputCommand:
		if d.caps.inputSelector == nil {
			d.unsupported(c.Name())
		}
		return d.caps.inputSelector.NextInput()

	case *fulfillment.PreviousInputCommand:
		if d.caps.inputSelector == nil {
			d.unsupported(c.Name())
		}
		return d.caps.inputSelector.PreviousInput()

	case *fulfillment.ColorLoopCommand:
		if d.caps.lightEffects == nil {
			d.unsupported(c.Name())
		}
		return d.caps.lightEffects.ColorLoop(c.Duration)

	case *fulfillment.SleepCommand:
		if d.caps.lightEffects == nil {
			d.unsupported(c.Name())
		}
		return d.caps.lightEffects.Sleep(c.Duration)

	case *fulfillment.StopEffectCommand:
		if d.caps.lightEffects == nil {
			d.unsupported(c.Name())
		}
		return d.caps.lightEffects.StopEffect()

	case *fulfillment.WakeCommand:
		if d.caps.lightEffects == nil {
			d.unsupported(c.Name())
		}
		return d.caps.lightEffects.Wake(c.Duration)

	case *fulfillment.LocateCommand:
		if d.caps.locator == nil {
			d.unsupported(c.Name())
		}
		lang := c.Lang
		if lang == "" {
			lang = traits.LanguageEnglish
		}
		return d.caps.locator.Locate(c.Silence, lang)

	case *fulfillment.LockUnlockCommand:
		if d.caps.lockUnlock == nil {
			d.unsupported(c.Name())
		}
		if err := d.caps.lockUnlock.SetLocked(c.Lock); err != nil {
			return err
		}
		locked, err := d.caps.lockUnlock.IsLocked()
		if err != nil {
			return err
		}
		states.Lock = &locked
		return nil

	case *fulfillment.SetModesCommand:
		if d.caps.modes == nil {
			d.unsupported(c.Name())
		}
		for modeName, settingName := range c.UpdateModeSettings {
			if err := d.caps.modes.UpdateModeSetting(modeName, settingName); err != nil {
				return err
			}
		}
		return nil

	case *fulfillment.EnableDisableGuestNetworkCommand:
		if d.caps.networkControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.networkControl.SetGuestNetworkEnabled(c.Enable)

	case *fulfillment.EnableDisableNetworkProfileCommand:
		if d.caps.networkControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.networkControl.SetNetworkProfileEnabled(c.Profile, c.Enable)

	case *fulfillment.GetGuestNetworkPasswordCommand:
		if d.caps.networkControl == nil {
			d.unsupported(c.Name())
		}
		password, err := d.caps.networkControl.GuestNetworkPassword()
		if err != nil {
			return err
		}
		states.GuestNetworkPassword = password
		return nil

	case *fulfillment.TestNetworkSpeedCommand:
		if d.caps.networkControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.networkControl.TestNetworkSpeed(c.TestDownloadSpeed, c.TestUploadSpeed)

	case *fulfillment.OnOffCommand:
		if d.caps.onOff == nil {
			d.unsupported(c.Name())
		}
		return d.caps.onOff.SetOn(c.On)

	case *fulfillment.OpenCloseCommand:
		if d.caps.openClose == nil {
			d.unsupported(c.Name())
		}
		return d.caps.openClose.SetOpen(c.OpenPercent, c.OpenDirection)

	case *fulfillment.OpenCloseRelativeCommand:
		if d.caps.openClose == nil {
			d.unsupported(c.Name())
		}
		return d.caps.openClose.SetOpenRelative(c.OpenRelativePercent, c.OpenDirection)

	case *fulfillment.RebootCommand:
		if d.caps.reboot == nil {
			d.unsupported(c.Name())
		}
		return d.caps.reboot.RebootDevice()

	case *fulfillment.RotationAbsoluteCommand:
		if d.caps.rotation == nil {
			d.unsupported(c.Name())
		}
		if c.RotationDegrees != nil {
			return d.caps.rotation.SetRotationDegrees(*c.RotationDegrees)
		}
		if c.RotationPercent != nil {
			return d.caps.rotation.SetRotationPercent(*c.RotationPercent)
		}
		return nil

	case *fulfillment.ActivateSceneCommand:
		if d.caps.scene == nil {
			d.unsupported(c.Name())
		}
		if c.Deactivate {
			return d.caps.scene.Deactivate()
		}
		return d.caps.scene.Activate()

	case *fulfillment.SoftwareUpdateCommand:
		if d.caps.softwareUpdate == nil {
			d.unsupported(c.Name())
		}
		return d.caps.softwareUpdate.PerformUpdate()

	case *fulfillment.StartStopCommand:
		if d.caps.startStop == nil {
			d.unsupported(c.Name())
		}
		zones := c.MultipleZones
		if c.Zone != "" {
			zones = []string{c.Zone}
		}
		return d.caps.startStop.StartStop(c.Start, zones)

	case *fulfillment.PauseUnpauseCommand:
		if d.caps.startStop == nil {
			d.unsupported(c.Name())
		}
		return d.caps.startStop.PauseUnpause(c.Pause)

	case *fulfillment.SetTemperatureCommand:
		if d.caps.temperatureControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.temperatureControl.SetTemperature(c.Temperature)

	case *fulfillment.ThermostatTemperatureSetpointCommand:
		if d.caps.temperatureSetting == nil {
			d.unsupported(c.Name())
		}
		return d.caps.temperatureSetting.SetTemperatureSetpoint(c.ThermostatTemperatureSetpoint)

	case *fulfillment.ThermostatTemperatureSetRangeCommand:
		if d.caps.temperatureSetting == nil {
			d.unsupported(c.Name())
		}
		return d.caps.temperatureSetting.SetTemperatureSetRange(
			c.ThermostatTemperatureSetpointHigh, c.ThermostatTemperatureSetpointLow)

	case *fulfillment.ThermostatSetModeCommand:
		if d.caps.temperatureSetting == nil {
			d.unsupported(c.Name())
		}
		return d.caps.temperatureSetting.SetThermostatMode(c.ThermostatMode)

	case *fulfillment.TemperatureRelativeCommand:
		if d.caps.temperatureSetting == nil {
			d.unsupported(c.Name())
		}
		if c.ThermostatTemperatureRelativeDegree != nil {
			if err := d.caps.temperatureSetting.SetTemperatureRelativeDegree(*c.ThermostatTemperatureRelativeDegree); err != nil {
				return err
			}
		}
		if c.ThermostatTemperatureRelativeWeight != nil {
			return d.caps.temperatureSetting.SetTemperatureRelativeWeight(*c.ThermostatTemperatureRelativeWeight)
		}
		return nil

	case *fulfillment.TimerStartCommand:
		if d.caps.timer == nil {
			d.unsupported(c.Name())
		}
		return d.caps.timer.StartTimer(c.TimerTimeSec)

	case *fulfillment.TimerAdjustCommand:
		if d.caps.timer == nil {
			d.unsupported(c.Name())
		}
		return d.caps.timer.AdjustTimer(c.TimerTimeSec)

	case *fulfillment.TimerPauseCommand:
		if d.caps.timer == nil {
			d.unsupported(c.Name())
		}
		return d.caps.timer.PauseTimer()

	case *fulfillment.TimerResumeCommand:
		if d.caps.timer == nil {
			d.unsupported(c.Name())
		}
		return d.caps.timer.ResumeTimer()

	case *fulfillment.TimerCancelCommand:
		if d.caps.timer == nil {
			d.unsupported(c.Name())
		}
		return d.caps.timer.CancelTimer()

	case *fulfillment.SetTogglesCommand:
		if d.caps.toggles == nil {
			d.unsupported(c.Name())
		}
		for name, state := range c.UpdateToggleSettings {
			if err := d.caps.toggles.SetToggle(name, state); err != nil {
				return err
			}
		}
		return nil

	case *fulfillment.MediaStopCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaStop()

	case *fulfillment.MediaNextCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaNext()

	case *fulfillment.MediaPreviousCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaPrevious()

	case *fulfillment.MediaPauseCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaPause()

	case *fulfillment.MediaResumeCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaResume()

	case *fulfillment.MediaSeekRelativeCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaSeekRelative(c.RelativePositionMs)

	case *fulfillment.MediaSeekToPositionCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaSeekToPosition(c.AbsPositionMs)

	case *fulfillment.MediaRepeatModeCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		isSingle := false
		if c.IsSingle != nil {
			isSingle = *c.IsSingle
		}
		return d.caps.transportControl.MediaRepeatMode(c.IsOn, isSingle)

	case *fulfillment.MediaShuffleCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaShuffle()

	case *fulfillment.MediaClosedCaptioningOnCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaClosedCaptioningOn(c.ClosedCaptioningLanguage, c.UserQueryLanguage)

	case *fulfillment.MediaClosedCaptioningOffCommand:
		if d.caps.transportControl == nil {
			d.unsupported(c.Name())
		}
		return d.caps.transportControl.MediaClosedCaptioningOff()

	case *fulfillment.MuteCommand:
		if d.caps.volume == nil {
			d.unsupported(c.Name())
		}
		return d.caps.volume.Mute(c.Mute)

	case *fulfillment.SetVolumeCommand:
		if d.caps.volume == nil {
			d.unsupported(c.Name())
		}
		return d.caps.volume.SetVolume(c.VolumeLevel)

	case *fulfillment.VolumeRelativeCommand:
		if d.caps.volume == nil {
			d.unsupported(c.Name())
		}
		return d.caps.volume.SetVolumeRelative(c.RelativeSteps)

	default:
		return fmt.Errorf("unhandled command %s", cmd.Name())
	}
}
