package fulfillment

import (
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// AppInstallCommand installs an application by key or by name.
type AppInstallCommand struct {
	NewApplication     string `json:"newApplication,omitempty"`
	NewApplicationName string `json:"newApplicationName,omitempty"`
}

func (*AppInstallCommand) Name() CommandName { return CommandAppInstall }

// AppSearchCommand searches for an application by key or by name.
type AppSearchCommand struct {
	NewApplication     string `json:"newApplication,omitempty"`
	NewApplicationName string `json:"newApplicationName,omitempty"`
}

func (*AppSearchCommand) Name() CommandName { return CommandAppSearch }

// AppSelectCommand selects an application by key or by name.
type AppSelectCommand struct {
	NewApplication     string `json:"newApplication,omitempty"`
	NewApplicationName string `json:"newApplicationName,omitempty"`
}

func (*AppSelectCommand) Name() CommandName { return CommandAppSelect }

// ArmDisarmCommand arms or disarms the device, optionally to a named
// arm level. Cancel set to true aborts an arming in progress.
type ArmDisarmCommand struct {
	FollowUpToken string `json:"followUpToken,omitempty"`
	Arm           bool   `json:"arm"`
	Cancel        *bool  `json:"cancel,omitempty"`
	ArmLevel      string `json:"armLevel,omitempty"`
}

func (*ArmDisarmCommand) Name() CommandName { return CommandArmDisarm }

// BrightnessAbsoluteCommand sets the brightness percentage.
type BrightnessAbsoluteCommand struct {
	Brightness int `json:"brightness"`
}

func (*BrightnessAbsoluteCommand) Name() CommandName { return CommandBrightnessAbsolute }

// BrightnessRelativeCommand adjusts brightness by an exact percentage
// or by an ambiguous weight in [-5, 5].
type BrightnessRelativeCommand struct {
	BrightnessRelativePercent *int `json:"brightnessRelativePercent,omitempty"`
	BrightnessRelativeWeight  *int `json:"brightnessRelativeWeight,omitempty"`
}

func (*BrightnessRelativeCommand) Name() CommandName { return CommandBrightnessRelative }

// GetCameraStreamCommand requests a camera stream URL for one of the
// given protocols. The capitalized field names are part of the wire
// contract.
type GetCameraStreamCommand struct {
	StreamToChromecast       bool                          `json:"StreamToChromecast"`
	SupportedStreamProtocols []traits.CameraStreamProtocol `json:"SupportedStreamProtocols"`
}

func (*GetCameraStreamCommand) Name() CommandName { return CommandGetCameraStream }

// SelectChannelCommand selects a channel by code, name or number.
type SelectChannelCommand struct {
	ChannelCode   string `json:"channelCode,omitempty"`
	ChannelName   string `json:"channelName,omitempty"`
	ChannelNumber string `json:"channelNumber,omitempty"`
}

func (*SelectChannelCommand) Name() CommandName { return CommandSelectChannel }

// RelativeChannelCommand adjusts the channel by a relative amount.
type RelativeChannelCommand struct {
	RelativeChannelChange int `json:"relativeChannelChange"`
}

func (*RelativeChannelCommand) Name() CommandName { return CommandRelativeChannel }

// ReturnChannelCommand returns to the previous channel.
type ReturnChannelCommand struct{}

func (*ReturnChannelCommand) Name() CommandName { return CommandReturnChannel }

// ColorAbsoluteCommand sets the absolute color value.
type ColorAbsoluteCommand struct {
	Color traits.ColorCommand `json:"color"`
}

func (*ColorAbsoluteCommand) Name() CommandName { return CommandColorAbsolute }

// CookCommand starts or stops cooking.
type CookCommand struct {
	Start       bool               `json:"start"`
	CookingMode traits.CookingMode `json:"cookingMode,omitempty"`
	FoodPreset  string             `json:"foodPreset,omitempty"`
	Quantity    *int               `json:"quantity,omitempty"`
	Unit        traits.SizeUnit    `json:"unit,omitempty"`
}

func (*CookCommand) Name() CommandName { return CommandCook }

// DispenseCommand dispenses an item, an amount, or a preset.
type DispenseCommand struct {
	Item       string          `json:"item,omitempty"`
	Amount     *int            `json:"amount,omitempty"`
	Unit       traits.SizeUnit `json:"unit,omitempty"`
	PresetName string          `json:"presetName,omitempty"`
}

func (*DispenseCommand) Name() CommandName { return CommandDispense }

// DockCommand sends the device to its dock.
type DockCommand struct{}

func (*DockCommand) Name() CommandName { return CommandDock }

// ChargeCommand starts or stops charging.
type ChargeCommand struct {
	Charge bool `json:"charge"`
}

func (*ChargeCommand) Name() CommandName { return CommandCharge }

// SetFanSpeedCommand sets a named fan speed or a speed percentage.
type SetFanSpeedCommand struct {
	FanSpeed        string   `json:"fanSpeed,omitempty"`
	FanSpeedPercent *float64 `json:"fanSpeedPercent,omitempty"`
}

func (*SetFanSpeedCommand) Name() CommandName { return CommandSetFanSpeed }

// SetFanSpeedRelativeCommand adjusts fan speed by a weight or by a
// percentage.
type SetFanSpeedRelativeCommand struct {
	FanSpeedRelativeWeight  *int     `json:"fanSpeedRelativeWeight,omitempty"`
	FanSpeedRelativePercent *float64 `json:"fanSpeedRelativePercent,omitempty"`
}

func (*SetFanSpeedRelativeCommand) Name() CommandName { return CommandSetFanSpeedRelative }

// ReverseCommand reverses the fan direction.
type ReverseCommand struct{}

func (*ReverseCommand) Name() CommandName { return CommandReverse }

// FillCommand fills or drains the device, optionally to a named level
// or a percentage.
type FillCommand struct {
	Fill        bool     `json:"fill"`
	FillLevel   string   `json:"fillLevel,omitempty"`
	FillPercent *float64 `json:"fillPercent,omitempty"`
}

func (*FillCommand) Name() CommandName { return CommandFill }

// SetHumidityCommand sets the humidity setpoint percentage.
type SetHumidityCommand struct {
	Humidity int `json:"humidity"`
}

func (*SetHumidityCommand) Name() CommandName { return CommandSetHumidity }

// HumidityRelativeCommand adjusts humidity by an exact percentage or
// by an ambiguous weight.
type HumidityRelativeCommand struct {
	HumidityRelativePercent *int `json:"humidityRelativePercent,omitempty"`
	HumidityRelativeWeight  *int `json:"humidityRelativeWeight,omitempty"`
}

func (*HumidityRelativeCommand) Name() CommandName { return CommandHumidityRelative }

// SetInputCommand switches to the named input.
type SetInputCommand struct {
	NewInput string `json:"newInput"`
}

func (*SetInputCommand) Name() CommandName { return CommandSetInput }

// NextInputCommand selects the next input. Only valid when inputs are
// ordered.
type NextInputCommand struct{}

func (*NextInputCommand) Name() CommandName { return CommandNextInput }

// PreviousInputCommand selects the previous input. Only valid when
// inputs are ordered.
type PreviousInputCommand struct{}

func (*PreviousInputCommand) Name() CommandName { return CommandPreviousInput }

// ColorLoopCommand cycles the device through a set of colors.
type ColorLoopCommand struct {
	Duration *int `json:"duration,omitempty"`
}

func (*ColorLoopCommand) Name() CommandName { return CommandColorLoop }

// SleepCommand gradually lowers brightness over a duration.
type SleepCommand struct {
	Duration *int `json:"duration,omitempty"`
}

func (*SleepCommand) Name() CommandName { return CommandSleep }

// StopEffectCommand stops the current light effect.
type StopEffectCommand struct{}

func (*StopEffectCommand) Name() CommandName { return CommandStopEffect }

// WakeCommand gradually raises brightness over a duration.
type WakeCommand struct {
	Duration *int `json:"duration,omitempty"`
}

func (*WakeCommand) Name() CommandName { return CommandWake }

// LocateCommand asks the device to generate a local alert. Lang
// defaults to English when absent.
type LocateCommand struct {
	Silence bool            `json:"silence,omitempty"`
	Lang    traits.Language `json:"lang,omitempty"`
}

func (*LocateCommand) Name() CommandName { return CommandLocate }

// LockUnlockCommand locks or unlocks the device.
type LockUnlockCommand struct {
	Lock          bool   `json:"lock"`
	FollowUpToken string `json:"followUpToken"`
}

func (*LockUnlockCommand) Name() CommandName { return CommandLockUnlock }

// SetModesCommand updates mode settings, keyed by mode name.
type SetModesCommand struct {
	UpdateModeSettings map[string]string `json:"updateModeSettings"`
}

func (*SetModesCommand) Name() CommandName { return CommandSetModes }

// EnableDisableGuestNetworkCommand enables or disables the guest
// network.
type EnableDisableGuestNetworkCommand struct {
	Enable bool `json:"enable"`
}

func (*EnableDisableGuestNetworkCommand) Name() CommandName { return CommandEnableDisableGuestNetwork }

// EnableDisableNetworkProfileCommand enables or disables a network
// profile.
type EnableDisableNetworkProfileCommand struct {
	Profile string `json:"profile"`
	Enable  bool   `json:"enable"`
}

func (*EnableDisableNetworkProfileCommand) Name() CommandName {
	return CommandEnableDisableNetworkProfile
}

// GetGuestNetworkPasswordCommand requests the guest network password.
type GetGuestNetworkPasswordCommand struct{}

func (*GetGuestNetworkPasswordCommand) Name() CommandName { return CommandGetGuestNetworkPassword }

// TestNetworkSpeedCommand runs a download and/or upload speed test.
type TestNetworkSpeedCommand struct {
	TestDownloadSpeed bool   `json:"testDownloadSpeed"`
	TestUploadSpeed   bool   `json:"testUploadSpeed"`
	FollowUpToken     string `json:"followUpToken"`
}

func (*TestNetworkSpeedCommand) Name() CommandName { return CommandTestNetworkSpeed }

// OnOffCommand turns the device on or off.
type OnOffCommand struct {
	On bool `json:"on"`
}

func (*OnOffCommand) Name() CommandName { return CommandOnOff }

// OpenCloseCommand sets the open percentage, optionally for a
// specific direction.
type OpenCloseCommand struct {
	OpenPercent   float64              `json:"openPercent"`
	OpenDirection traits.OpenDirection `json:"openDirection,omitempty"`
}

func (*OpenCloseCommand) Name() CommandName { return CommandOpenClose }

// OpenCloseRelativeCommand adjusts the open percentage relative to
// the current state.
type OpenCloseRelativeCommand struct {
	OpenRelativePercent float64              `json:"openRelativePercent"`
	OpenDirection       traits.OpenDirection `json:"openDirection,omitempty"`
}

func (*OpenCloseRelativeCommand) Name() CommandName { return CommandOpenCloseRelative }

// RebootCommand reboots the device.
type RebootCommand struct{}

func (*RebootCommand) Name() CommandName { return CommandReboot }

// RotationAbsoluteCommand rotates the device to an absolute position
// in degrees or percent.
type RotationAbsoluteCommand struct {
	RotationDegrees *float64 `json:"rotationDegrees,omitempty"`
	RotationPercent *float64 `json:"rotationPercent,omitempty"`
}

func (*RotationAbsoluteCommand) Name() CommandName { return CommandRotationAbsolute }

// ActivateSceneCommand activates a scene, or deactivates it when the
// scene is reversible.
type ActivateSceneCommand struct {
	Deactivate bool `json:"deactivate"`
}

func (*ActivateSceneCommand) Name() CommandName { return CommandActivateScene }

// SoftwareUpdateCommand updates the device software.
type SoftwareUpdateCommand struct{}

func (*SoftwareUpdateCommand) Name() CommandName { return CommandSoftwareUpdate }

// StartStopCommand starts or stops the device, optionally in one or
// more zones. MultipleZones is set instead of Zone when the user
// names several zones.
type StartStopCommand struct {
	Start         bool     `json:"start"`
	Zone          string   `json:"zone,omitempty"`
	MultipleZones []string `json:"multipleZones,omitempty"`
}

func (*StartStopCommand) Name() CommandName { return CommandStartStop }

// PauseUnpauseCommand pauses or unpauses device operation.
type PauseUnpauseCommand struct {
	Pause bool `json:"pause"`
}

func (*PauseUnpauseCommand) Name() CommandName { return CommandPauseUnpause }

// SetTemperatureCommand sets the temperature in degrees Celsius.
type SetTemperatureCommand struct {
	Temperature float64 `json:"temperature"`
}

func (*SetTemperatureCommand) Name() CommandName { return CommandSetTemperature }

// ThermostatTemperatureSetpointCommand sets the target temperature
// setpoint.
type ThermostatTemperatureSetpointCommand struct {
	ThermostatTemperatureSetpoint float64 `json:"thermostatTemperatureSetpoint"`
}

func (*ThermostatTemperatureSetpointCommand) Name() CommandName {
	return CommandThermostatTemperatureSetpoint
}

// ThermostatTemperatureSetRangeCommand sets a setpoint range. Requires
// heatcool mode support.
type ThermostatTemperatureSetRangeCommand struct {
	ThermostatTemperatureSetpointHigh float64 `json:"thermostatTemperatureSetpointHigh"`
	ThermostatTemperatureSetpointLow  float64 `json:"thermostatTemperatureSetpointLow"`
}

func (*ThermostatTemperatureSetRangeCommand) Name() CommandName {
	return CommandThermostatTemperatureSetRange
}

// ThermostatSetModeCommand sets the thermostat operating mode.
type ThermostatSetModeCommand struct {
	ThermostatMode traits.ThermostatMode `json:"thermostatMode"`
}

func (*ThermostatSetModeCommand) Name() CommandName { return CommandThermostatSetMode }

// TemperatureRelativeCommand adjusts the temperature by an exact
// number of degrees or by an ambiguous weight.
type TemperatureRelativeCommand struct {
	ThermostatTemperatureRelativeDegree *float64 `json:"thermostatTemperatureRelativeDegree,omitempty"`
	ThermostatTemperatureRelativeWeight *float64 `json:"thermostatTemperatureRelativeWeight,omitempty"`
}

func (*TemperatureRelativeCommand) Name() CommandName { return CommandTemperatureRelative }

// TimerStartCommand starts a new timer. The duration must be within
// [1, maxTimerLimitSec].
type TimerStartCommand struct {
	TimerTimeSec int `json:"timerTimeSec"`
}

func (*TimerStartCommand) Name() CommandName { return CommandTimerStart }

// TimerAdjustCommand adjusts the running timer by a positive or
// negative number of seconds.
type TimerAdjustCommand struct {
	TimerTimeSec int `json:"timerTimeSec"`
}

func (*TimerAdjustCommand) Name() CommandName { return CommandTimerAdjust }

// TimerPauseCommand pauses the running timer.
type TimerPauseCommand struct{}

func (*TimerPauseCommand) Name() CommandName { return CommandTimerPause }

// TimerResumeCommand resumes a paused timer.
type TimerResumeCommand struct{}

func (*TimerResumeCommand) Name() CommandName { return CommandTimerResume }

// TimerCancelCommand cancels the timer.
type TimerCancelCommand struct{}

func (*TimerCancelCommand) Name() CommandName { return CommandTimerCancel }

// SetTogglesCommand updates toggle states, keyed by toggle name.
type SetTogglesCommand struct {
	UpdateToggleSettings map[string]bool `json:"updateToggleSettings"`
}

func (*SetTogglesCommand) Name() CommandName { return CommandSetToggles }

// MediaStopCommand stops media playback.
type MediaStopCommand struct{}

func (*MediaStopCommand) Name() CommandName { return CommandMediaStop }

// MediaNextCommand skips to the next media item.
type MediaNextCommand struct{}

func (*MediaNextCommand) Name() CommandName { return CommandMediaNext }

// MediaPreviousCommand skips to the previous media item.
type MediaPreviousCommand struct{}

func (*MediaPreviousCommand) Name() CommandName { return CommandMediaPrevious }

// MediaPauseCommand pauses media playback.
type MediaPauseCommand struct{}

func (*MediaPauseCommand) Name() CommandName { return CommandMediaPause }

// MediaResumeCommand resumes media playback.
type MediaResumeCommand struct{}

func (*MediaResumeCommand) Name() CommandName { return CommandMediaResume }

// MediaSeekRelativeCommand seeks forward or backward by a number of
// milliseconds.
type MediaSeekRelativeCommand struct {
	RelativePositionMs int `json:"relativePositionMs"`
}

func (*MediaSeekRelativeCommand) Name() CommandName { return CommandMediaSeekRelative }

// MediaSeekToPositionCommand seeks to an absolute position in
// milliseconds.
type MediaSeekToPositionCommand struct {
	AbsPositionMs int `json:"absPositionMs"`
}

func (*MediaSeekToPositionCommand) Name() CommandName { return CommandMediaSeekToPosition }

// MediaRepeatModeCommand sets the repeat playback mode. IsSingle true
// selects single-item repeat.
type MediaRepeatModeCommand struct {
	IsOn     bool  `json:"isOn"`
	IsSingle *bool `json:"isSingle,omitempty"`
}

func (*MediaRepeatModeCommand) Name() CommandName { return CommandMediaRepeatMode }

// MediaShuffleCommand shuffles the current playlist.
type MediaShuffleCommand struct{}

func (*MediaShuffleCommand) Name() CommandName { return CommandMediaShuffle }

// MediaClosedCaptioningOnCommand turns captions on.
type MediaClosedCaptioningOnCommand struct {
	ClosedCaptioningLanguage string `json:"closedCaptioningLanguage"`
	UserQueryLanguage        string `json:"userQueryLanguage"`
}

func (*MediaClosedCaptioningOnCommand) Name() CommandName { return CommandMediaClosedCaptioningOn }

// MediaClosedCaptioningOffCommand turns captions off.
type MediaClosedCaptioningOffCommand struct{}

func (*MediaClosedCaptioningOffCommand) Name() CommandName { return CommandMediaClosedCaptioningOff }

// MuteCommand mutes or unmutes the device.
type MuteCommand struct {
	Mute bool `json:"mute"`
}

func (*MuteCommand) Name() CommandName { return CommandMute }

// SetVolumeCommand sets the volume to a level in [0, volumeMaxLevel].
type SetVolumeCommand struct {
	VolumeLevel int `json:"volumeLevel"`
}

func (*SetVolumeCommand) Name() CommandName { return CommandSetVolume }

// VolumeRelativeCommand adjusts the volume by a number of steps,
// negative to decrease.
type VolumeRelativeCommand struct {
	RelativeSteps int `json:"relativeSteps"`
}

func (*VolumeRelativeCommand) Name() CommandName { return CommandVolumeRelative }
