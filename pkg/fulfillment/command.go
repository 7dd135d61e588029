package fulfillment

import (
	"encoding/json"
	"fmt"
)

// CommandName is the wire identifier of an EXECUTE command.
type CommandName string

const (
	CommandAppInstall                    CommandName = "action.devices.commands.appInstall"
	CommandAppSearch                     CommandName = "action.devices.commands.appSearch"
	CommandAppSelect                     CommandName = "action.devices.commands.appSelect"
	CommandArmDisarm                     CommandName = "action.devices.commands.ArmDisarm"
	CommandBrightnessAbsolute            CommandName = "action.devices.commands.BrightnessAbsolute"
	CommandBrightnessRelative            CommandName = "action.devices.commands.BrightnessRelative"
	CommandGetCameraStream               CommandName = "action.devices.commands.GetCameraStream"
	CommandSelectChannel                 CommandName = "action.devices.commands.selectChannel"
	CommandRelativeChannel               CommandName = "action.devices.commands.relativeChannel"
	CommandReturnChannel                 CommandName = "action.devices.commands.returnChannel"
	CommandColorAbsolute                 CommandName = "action.devices.commands.ColorAbsolute"
	CommandCook                          CommandName = "action.devices.commands.Cook"
	CommandDispense                      CommandName = "action.devices.commands.Dispense"
	CommandDock                          CommandName = "action.devices.commands.Dock"
	CommandCharge                        CommandName = "action.devices.commands.Charge"
	CommandSetFanSpeed                   CommandName = "action.devices.commands.SetFanSpeed"
	CommandSetFanSpeedRelative           CommandName = "action.devices.commands.SetFanSpeedRelative"
	CommandReverse                       CommandName = "action.devices.commands.Reverse"
	CommandFill                          CommandName = "action.devices.commands.Fill"
	CommandSetHumidity                   CommandName = "action.devices.commands.SetHumidity"
	CommandHumidityRelative              CommandName = "action.devices.commands.HumidityRelative"
	CommandSetInput                      CommandName = "action.devices.commands.SetInput"
	CommandNextInput                     CommandName = "action.devices.commands.NextInput"
	CommandPreviousInput                 CommandName = "action.devices.commands.PreviousInput"
	CommandColorLoop                     CommandName = "action.devices.commands.ColorLoop"
	CommandSleep                         CommandName = "action.devices.commands.Sleep"
	CommandStopEffect                    CommandName = "action.devices.commands.StopEffect"
	CommandWake                          CommandName = "action.devices.commands.Wake"
	CommandLocate                        CommandName = "action.devices.commands.Locate"
	CommandLockUnlock                    CommandName = "action.devices.commands.LockUnlock"
	CommandSetModes                      CommandName = "action.devices.commands.SetModes"
	CommandEnableDisableGuestNetwork     CommandName = "action.devices.commands.EnableDisableGuestNetwork"
	CommandEnableDisableNetworkProfile   CommandName = "action.devices.commands.EnableDisableNetworkProfile"
	CommandGetGuestNetworkPassword       CommandName = "action.devices.commands.GetGuestNetworkPassword"
	CommandTestNetworkSpeed              CommandName = "action.devices.commands.TestNetworkSpeed"
	CommandOnOff                         CommandName = "action.devices.commands.OnOff"
	CommandOpenClose                     CommandName = "action.devices.commands.OpenClose"
	CommandOpenCloseRelative             CommandName = "action.devices.commands.OpenCloseRelative"
	CommandReboot                        CommandName = "action.devices.commands.Reboot"
	CommandRotationAbsolute              CommandName = "action.devices.commands.RotationAbsolute"
	CommandActivateScene                 CommandName = "action.devices.commands.ActivateScene"
	CommandSoftwareUpdate                CommandName = "action.devices.commands.SoftwareUpdate"
	CommandStartStop                     CommandName = "action.devices.commands.StartStop"
	CommandPauseUnpause                  CommandName = "action.devices.commands.PauseUnpause"
	CommandSetTemperature                CommandName = "action.devices.commands.SetTemperature"
	CommandThermostatTemperatureSetpoint CommandName = "action.devices.commands.ThermostatTemperatureSetpoint"
	CommandThermostatTemperatureSetRange CommandName = "action.devices.commands.ThermostatTemperatureSetRange"
	CommandThermostatSetMode             CommandName = "action.devices.commands.ThermostatSetMode"
	CommandTemperatureRelative           CommandName = "action.devices.commands.TemperatureRelative"
	CommandTimerStart                    CommandName = "action.devices.commands.TimerStart"
	CommandTimerAdjust                   CommandName = "action.devices.commands.TimerAdjust"
	CommandTimerPause                    CommandName = "action.devices.commands.TimerPause"
	CommandTimerResume                   CommandName = "action.devices.commands.TimerResume"
	CommandTimerCancel                   CommandName = "action.devices.commands.TimerCancel"
	CommandSetToggles                    CommandName = "action.devices.commands.SetToggles"
	CommandMediaStop                     CommandName = "action.devices.commands.mediaStop"
	CommandMediaNext                     CommandName = "action.devices.commands.mediaNext"
	CommandMediaPrevious                 CommandName = "action.devices.commands.mediaPrevious"
	CommandMediaPause                    CommandName = "action.devices.commands.mediaPause"
	CommandMediaResume                   CommandName = "action.devices.commands.mediaResume"
	CommandMediaSeekRelative             CommandName = "action.devices.commands.mediaSeekRelative"
	CommandMediaSeekToPosition           CommandName = "action.devices.commands.mediaSeekToPosition"
	CommandMediaRepeatMode               CommandName = "action.devices.commands.mediaRepeatMode"
	CommandMediaShuffle                  CommandName = "action.devices.commands.mediaShuffle"
	CommandMediaClosedCaptioningOn       CommandName = "action.devices.commands.mediaClosedCaptioningOn"
	CommandMediaClosedCaptioningOff      CommandName = "action.devices.commands.mediaClosedCaptioningOff"
	CommandMute                          CommandName = "action.devices.commands.mute"
	CommandSetVolume                     CommandName = "action.devices.commands.setVolume"
	CommandVolumeRelative                CommandName = "action.devices.commands.volumeRelative"
)

// Command is the decoded params of a single EXECUTE command.
// Implementations are the *Command structs in this package.
type Command interface {
	Name() CommandName
}

// Execution wraps a command for the tagged wire form
// {"command": "...", "params": {...}}.
type Execution struct {
	Command Command
}

// commandFactories maps each command identifier to a constructor for
// its params struct. Decoding an identifier not listed here fails.
var commandFactories = map[CommandName]func() Command{
	CommandAppInstall:                    func() Command { return &AppInstallCommand{} },
	CommandAppSearch:                     func() Command { return &AppSearchCommand{} },
	CommandAppSelect:                     func() Command { return &AppSelectCommand{} },
	CommandArmDisarm:                     func() Command { return &ArmDisarmCommand{} },
	CommandBrightnessAbsolute:            func() Command { return &BrightnessAbsoluteCommand{} },
	CommandBrightnessRelative:            func() Command { return &BrightnessRelativeCommand{} },
	CommandGetCameraStream:               func() Command { return &GetCameraStreamCommand{} },
	CommandSelectChannel:                 func() Command { return &SelectChannelCommand{} },
	CommandRelativeChannel:               func() Command { return &RelativeChannelCommand{} },
	CommandReturnChannel:                 func() Command { return &ReturnChannelCommand{} },
	CommandColorAbsolute:                 func() Command { return &ColorAbsoluteCommand{} },
	CommandCook:                          func() Command { return &CookCommand{} },
	CommandDispense:                      func() Command { return &DispenseCommand{} },
	CommandDock:                          func() Command { return &DockCommand{} },
	CommandCharge:                        func() Command { return &ChargeCommand{} },
	CommandSetFanSpeed:                   func() Command { return &SetFanSpeedCommand{} },
	CommandSetFanSpeedRelative:           func() Command { return &SetFanSpeedRelativeCommand{} },
	CommandReverse:                       func() Command { return &ReverseCommand{} },
	CommandFill:                          func() Command { return &FillCommand{} },
	CommandSetHumidity:                   func() Command { return &SetHumidityCommand{} },
	CommandHumidityRelative:              func() Command { return &HumidityRelativeCommand{} },
	CommandSetInput:                      func() Command { return &SetInputCommand{} },
	CommandNextInput:                     func() Command { return &NextInputCommand{} },
	CommandPreviousInput:                 func() Command { return &PreviousInputCommand{} },
	CommandColorLoop:                     func() Command { return &ColorLoopCommand{} },
	CommandSleep:                         func() Command { return &SleepCommand{} },
	CommandStopEffect:                    func() Command { return &StopEffectCommand{} },
	CommandWake:                          func() Command { return &WakeCommand{} },
	CommandLocate:                        func() Command { return &LocateCommand{} },
	CommandLockUnlock:                    func() Command { return &LockUnlockCommand{} },
	CommandSetModes:                      func() Command { return &SetModesCommand{} },
	CommandEnableDisableGuestNetwork:     func() Command { return &EnableDisableGuestNetworkCommand{} },
	CommandEnableDisableNetworkProfile:   func() Command { return &EnableDisableNetworkProfileCommand{} },
	CommandGetGuestNetworkPassword:       func() Command { return &GetGuestNetworkPasswordCommand{} },
	CommandTestNetworkSpeed:              func() Command { return &TestNetworkSpeedCommand{} },
	CommandOnOff:                         func() Command { return &OnOffCommand{} },
	CommandOpenClose:                     func() Command { return &OpenCloseCommand{} },
	CommandOpenCloseRelative:             func() Command { return &OpenCloseRelativeCommand{} },
	CommandReboot:                        func() Command { return &RebootCommand{} },
	CommandRotationAbsolute:              func() Command { return &RotationAbsoluteCommand{} },
	CommandActivateScene:                 func() Command { return &ActivateSceneCommand{} },
	CommandSoftwareUpdate:                func() Command { return &SoftwareUpdateCommand{} },
	CommandStartStop:                     func() Command { return &StartStopCommand{} },
	CommandPauseUnpause:                  func() Command { return &PauseUnpauseCommand{} },
	CommandSetTemperature:                func() Command { return &SetTemperatureCommand{} },
	CommandThermostatTemperatureSetpoint: func() Command { return &ThermostatTemperatureSetpointCommand{} },
	CommandThermostatTemperatureSetRange: func() Command { return &ThermostatTemperatureSetRangeCommand{} },
	CommandThermostatSetMode:             func() Command { return &ThermostatSetModeCommand{} },
	CommandTemperatureRelative:           func() Command { return &TemperatureRelativeCommand{} },
	CommandTimerStart:                    func() Command { return &TimerStartCommand{} },
	CommandTimerAdjust:                   func() Command { return &TimerAdjustCommand{} },
	CommandTimerPause:                    func() Command { return &TimerPauseCommand{} },
	CommandTimerResume:                   func() Command { return &TimerResumeCommand{} },
	CommandTimerCancel:                   func() Command { return &TimerCancelCommand{} },
	CommandSetToggles:                    func() Command { return &SetTogglesCommand{} },
	CommandMediaStop:                     func() Command { return &MediaStopCommand{} },
	CommandMediaNext:                     func() Command { return &MediaNextCommand{} },
	CommandMediaPrevious:                 func() Command { return &MediaPreviousCommand{} },
	CommandMediaPause:                    func() Command { return &MediaPauseCommand{} },
	CommandMediaResume:                   func() Command { return &MediaResumeCommand{} },
	CommandMediaSeekRelative:             func() Command { return &MediaSeekRelativeCommand{} },
	CommandMediaSeekToPosition:           func() Command { return &MediaSeekToPositionCommand{} },
	CommandMediaRepeatMode:               func() Command { return &MediaRepeatModeCommand{} },
	CommandMediaShuffle:                  func() Command { return &MediaShuffleCommand{} },
	CommandMediaClosedCaptioningOn:       func() Command { return &MediaClosedCaptioningOnCommand{} },
	CommandMediaClosedCaptioningOff:      func() Command { return &MediaClosedCaptioningOffCommand{} },
	CommandMute:                          func() Command { return &MuteCommand{} },
	CommandSetVolume:                     func() Command { return &SetVolumeCommand{} },
	CommandVolumeRelative:                func() Command { return &VolumeRelativeCommand{} },
}

// UnmarshalJSON decodes the tagged form into the params struct
// matching the command identifier.
func (e *Execution) UnmarshalJSON(data []byte) error {
	var raw struct {
		Command CommandName     `json:"command"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	factory, ok := commandFactories[raw.Command]
	if !ok {
		return fmt.Errorf("unknown command: %q", raw.Command)
	}
	cmd := factory()
	if len(raw.Params) > 0 {
		if err := json.Unmarshal(raw.Params, cmd); err != nil {
			return fmt.Errorf("failed to decode %s params: %w", raw.Command, err)
		}
	}
	e.Command = cmd
	return nil
}

// MarshalJSON encodes the command back into its tagged form.
func (e Execution) MarshalJSON() ([]byte, error) {
	if e.Command == nil {
		return nil, fmt.Errorf("execution has no command")
	}
	raw := struct {
		Command CommandName `json:"command"`
		Params  Command     `json:"params"`
	}{Command: e.Command.Name(), Params: e.Command}
	return json.Marshal(raw)
}
