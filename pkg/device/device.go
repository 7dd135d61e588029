package device

import (
	"sync"

	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// capabilities holds one slot per supported trait. A nil slot means the
// device does not carry that trait.
type capabilities struct {
	appSelector        traits.AppSelector
	armDisarm          traits.ArmDisarm
	brightness         traits.Brightness
	cameraStream       traits.CameraStream
	channel            traits.Channel
	colorSetting       traits.ColorSetting
	cook               traits.Cook
	dispense           traits.Dispense
	dock               traits.Dock
	energyStorage      traits.EnergyStorage
	fanSpeed           traits.FanSpeed
	fill               traits.Fill
	humiditySetting    traits.HumiditySetting
	inputSelector      traits.InputSelector
	lightEffects       traits.LightEffects
	locator            traits.Locator
	lockUnlock         traits.LockUnlock
	mediaState         traits.MediaState
	modes              traits.Modes
	networkControl     traits.NetworkControl
	objectDetection    traits.ObjectDetection
	onOff              traits.OnOff
	openClose          traits.OpenClose
	reboot             traits.Reboot
	rotation           traits.Rotation
	runCycle           traits.RunCycle
	scene              traits.Scene
	sensorState        traits.SensorState
	softwareUpdate     traits.SoftwareUpdate
	startStop          traits.StartStop
	statusReport       traits.StatusReport
	temperatureControl traits.TemperatureControl
	temperatureSetting traits.TemperatureSetting
	timer              traits.Timer
	toggles            traits.Toggles
	transportControl   traits.TransportControl
	volume             traits.Volume
}

// Device is one registry entry. It pairs a device identity with the
// capability traits registered on it.
type Device struct {
	mu sync.Mutex

	id    string
	typ   Type
	basic traits.BasicDevice

	traitList []traits.Trait
	caps      capabilities
}

// New creates a device with the given identifier, type and identity
// contract. The device starts without capabilities.
func New(id string, typ Type, basic traits.BasicDevice) *Device {
	return &Device{
		id:    id,
		typ:   typ,
		basic: basic,
	}
}

// ID returns the device identifier.
func (d *Device) ID() string {
	return d.id
}

// Type returns the device type.
func (d *Device) Type() Type {
	return d.typ
}

// Traits returns the registered traits, in registration order.
func (d *Device) Traits() []traits.Trait {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]traits.Trait(nil), d.traitList...)
}

// Disconnect releases the resources of the underlying device, if it
// implements Disconnector.
func (d *Device) Disconnect() {
	if disc, ok := d.basic.(traits.Disconnector); ok {
		disc.Disconnect()
	}
}

func (d *Device) register(t traits.Trait) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.traitList {
		if existing == t {
			return
		}
	}
	d.traitList = append(d.traitList, t)
}

// SetAppSelector registers the AppSelector capability.
func (d *Device) SetAppSelector(t traits.AppSelector) {
	d.caps.appSelector = t
	d.register(traits.TraitAppSelector)
}

// SetArmDisarm registers the ArmDisarm capability.
func (d *Device) SetArmDisarm(t traits.ArmDisarm) {
	d.caps.armDisarm = t
	d.register(traits.TraitArmDisarm)
}

// SetBrightness registers the Brightness capability.
func (d *Device) SetBrightness(t traits.Brightness) {
	d.caps.brightness = t
	d.register(traits.TraitBrightness)
}

// SetCameraStream registers the CameraStream capability.
func (d *Device) SetCameraStream(t traits.CameraStream) {
	d.caps.cameraStream = t
	d.register(traits.TraitCameraStream)
}

// SetChannel registers the Channel capability.
func (d *Device) SetChannel(t traits.Channel) {
	d.caps.channel = t
	d.register(traits.TraitChannel)
}

// SetColorSetting registers the ColorSetting capability.
func (d *Device) SetColorSetting(t traits.ColorSetting) {
	d.caps.colorSetting = t
	d.register(traits.TraitColorSetting)
}

// SetCook registers the Cook capability.
func (d *Device) SetCook(t traits.Cook) {
	d.caps.cook = t
	d.register(traits.TraitCook)
}

// SetDispense registers the Dispense capability.
func (d *Device) SetDispense(t traits.Dispense) {
	d.caps.dispense = t
	d.register(traits.TraitDispense)
}

// SetDock registers the Dock capability.
func (d *Device) SetDock(t traits.Dock) {
	d.caps.dock = t
	d.register(traits.TraitDock)
}

// SetEnergyStorage registers the EnergyStorage capability.
func (d *Device) SetEnergyStorage(t traits.EnergyStorage) {
	d.caps.energyStorage = t
	d.register(traits.TraitEnergyStorage)
}

// SetFanSpeed registers the FanSpeed capability.
func (d *Device) SetFanSpeed(t traits.FanSpeed) {
	d.caps.fanSpeed = t
	d.register(traits.TraitFanSpeed)
}

// SetFill registers the Fill capability.
func (d *Device) SetFill(t traits.Fill) {
	d.caps.fill = t
	d.register(traits.TraitFill)
}

// SetHumiditySetting registers the HumiditySetting capability.
func (d *Device) SetHumiditySetting(t traits.HumiditySetting) {
	d.caps.humiditySetting = t
	d.register(traits.TraitHumiditySetting)
}

// SetInputSelector registers the InputSelector capability.
func (d *Device) SetInputSelector(t traits.InputSelector) {
	d.caps.inputSelector = t
	d.register(traits.TraitInputSelector)
}

// SetLightEffects registers the LightEffects capability.
func (d *Device) SetLightEffects(t traits.LightEffects) {
	d.caps.lightEffects = t
	d.register(traits.TraitLightEffects)
}

// SetLocator registers the Locator capability.
func (d *Device) SetLocator(t traits.Locator) {
	d.caps.locator = t
	d.register(traits.TraitLocator)
}

// SetLockUnlock registers the LockUnlock capability.
func (d *Device) SetLockUnlock(t traits.LockUnlock) {
	d.caps.lockUnlock = t
	d.register(traits.TraitLockUnlock)
}

// SetMediaState registers the MediaState capability.
func (d *Device) SetMediaState(t traits.MediaState) {
	d.caps.mediaState = t
	d.register(traits.TraitMediaState)
}

// SetModes registers the Modes capability.
func (d *Device) SetModes(t traits.Modes) {
	d.caps.modes = t
	d.register(traits.TraitModes)
}

// SetNetworkControl registers the NetworkControl capability.
func (d *Device) SetNetworkControl(t traits.NetworkControl) {
	d.caps.networkControl = t
	d.register(traits.TraitNetworkControl)
}

// SetObjectDetection registers the ObjectDetection capability.
func (d *Device) SetObjectDetection(t traits.ObjectDetection) {
	d.caps.objectDetection = t
	d.register(traits.TraitObjectDetection)
}

// SetOnOff registers the OnOff capability.
func (d *Device) SetOnOff(t traits.OnOff) {
	d.caps.onOff = t
	d.register(traits.TraitOnOff)
}

// SetOpenClose registers the OpenClose capability.
func (d *Device) SetOpenClose(t traits.OpenClose) {
	d.caps.openClose = t
	d.register(traits.TraitOpenClose)
}

// SetReboot registers the Reboot capability.
func (d *Device) SetReboot(t traits.Reboot) {
	d.caps.reboot = t
	d.register(traits.TraitReboot)
}

// SetRotation registers the Rotation capability.
func (d *Device) SetRotation(t traits.Rotation) {
	d.caps.rotation = t
	d.register(traits.TraitRotation)
}

// SetRunCycle registers the RunCycle capability.
func (d *Device) SetRunCycle(t traits.RunCycle) {
	d.caps.runCycle = t
	d.register(traits.TraitRunCycle)
}

// SetScene registers the Scene capability.
func (d *Device) SetScene(t traits.Scene) {
	d.caps.scene = t
	d.register(traits.TraitScene)
}

// SetSensorState registers the SensorState capability.
func (d *Device) SetSensorState(t traits.SensorState) {
	d.caps.sensorState = t
	d.register(traits.TraitSensorState)
}

// SetSoftwareUpdate registers the SoftwareUpdate capability.
func (d *Device) SetSoftwareUpdate(t traits.SoftwareUpdate) {
	d.caps.softwareUpdate = t
	d.register(traits.TraitSoftwareUpdate)
}

// SetStartStop registers the StartStop capability.
func (d *Device) SetStartStop(t traits.StartStop) {
	d.caps.startStop = t
	d.register(traits.TraitStartStop)
}

// SetStatusReport registers the StatusReport capability.
func (d *Device) SetStatusReport(t traits.StatusReport) {
	d.caps.statusReport = t
	d.register(traits.TraitStatusReport)
}

// SetTemperatureControl registers the TemperatureControl capability.
func (d *Device) SetTemperatureControl(t traits.TemperatureControl) {
	d.caps.temperatureControl = t
	d.register(traits.TraitTemperatureControl)
}

// SetTemperatureSetting registers the TemperatureSetting capability.
func (d *Device) SetTemperatureSetting(t traits.TemperatureSetting) {
	d.caps.temperatureSetting = t
	d.register(traits.TraitTemperatureSetting)
}

// SetTimer registers the Timer capability.
func (d *Device) SetTimer(t traits.Timer) {
	d.caps.timer = t
	d.register(traits.TraitTimer)
}

// SetToggles registers the Toggles capability.
func (d *Device) SetToggles(t traits.Toggles) {
	d.caps.toggles = t
	d.register(traits.TraitToggles)
}

// SetTransportControl registers the TransportControl capability.
func (d *Device) SetTransportControl(t traits.TransportControl) {
	d.caps.transportControl = t
	d.register(traits.TraitTransportControl)
}

// SetVolume registers the Volume capability.
func (d *Device) SetVolume(t traits.Volume) {
	d.caps.volume = t
	d.register(traits.TraitVolume)
}
