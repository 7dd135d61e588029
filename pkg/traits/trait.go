package traits

// Trait identifies one capability on the wire. Trait names are emitted
// verbatim in the SYNC response's traits list.
type Trait string

// All traits understood by the dispatcher.
const (
	TraitAppSelector        Trait = "action.devices.traits.AppSelector"
	TraitArmDisarm          Trait = "action.devices.traits.ArmDisarm"
	TraitBrightness         Trait = "action.devices.traits.Brightness"
	TraitCameraStream       Trait = "action.devices.traits.CameraStream"
	TraitChannel            Trait = "action.devices.traits.Channel"
	TraitColorSetting       Trait = "action.devices.traits.ColorSetting"
	TraitCook               Trait = "action.devices.traits.Cook"
	TraitDispense           Trait = "action.devices.traits.Dispense"
	TraitDock               Trait = "action.devices.traits.Dock"
	TraitEnergyStorage      Trait = "action.devices.traits.EnergyStorage"
	TraitFanSpeed           Trait = "action.devices.traits.FanSpeed"
	TraitFill               Trait = "action.devices.traits.Fill"
	TraitHumiditySetting    Trait = "action.devices.traits.HumiditySetting"
	TraitInputSelector      Trait = "action.devices.traits.InputSelector"
	TraitLightEffects       Trait = "action.devices.traits.LightEffects"
	TraitLocator            Trait = "action.devices.traits.Locator"
	TraitLockUnlock         Trait = "action.devices.traits.LockUnlock"
	TraitMediaState         Trait = "action.devices.traits.MediaState"
	TraitModes              Trait = "action.devices.traits.Modes"
	TraitNetworkControl     Trait = "action.devices.traits.NetworkControl"
	TraitObjectDetection    Trait = "action.devices.traits.ObjectDetection"
	TraitOnOff              Trait = "action.devices.traits.OnOff"
	TraitOpenClose          Trait = "action.devices.traits.OpenClose"
	TraitReboot             Trait = "action.devices.traits.Reboot"
	TraitRotation           Trait = "action.devices.traits.Rotation"
	TraitRunCycle           Trait = "action.devices.traits.RunCycle"
	TraitScene              Trait = "action.devices.traits.Scene"
	TraitSensorState        Trait = "action.devices.traits.SensorState"
	TraitSoftwareUpdate     Trait = "action.devices.traits.SoftwareUpdate"
	TraitStartStop          Trait = "action.devices.traits.StartStop"
	TraitStatusReport       Trait = "action.devices.traits.StatusReport"
	TraitTemperatureControl Trait = "action.devices.traits.TemperatureControl"
	TraitTemperatureSetting Trait = "action.devices.traits.TemperatureSetting"
	TraitTimer              Trait = "action.devices.traits.Timer"
	TraitToggles            Trait = "action.devices.traits.Toggles"
	TraitTransportControl   Trait = "action.devices.traits.TransportControl"
	TraitVolume             Trait = "action.devices.traits.Volume"
)
