package fulfillment

import (
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// SyncPayload is the SYNC response payload. ErrorCode and DebugString
// are set instead of Devices when enumeration failed as a whole.
type SyncPayload struct {
	AgentUserID string       `json:"agentUserId"`
	Devices     []SyncDevice `json:"devices"`
	ErrorCode   string       `json:"errorCode,omitempty"`
	DebugString string       `json:"debugString,omitempty"`
}

// SyncDevice describes one device: its identity, the traits it
// registered, and the attributes those traits advertise.
type SyncDevice struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Traits          []traits.Trait    `json:"traits"`
	Name            traits.DeviceName `json:"name"`
	WillReportState bool              `json:"willReportState"`
	RoomHint        string            `json:"roomHint,omitempty"`
	DeviceInfo      traits.DeviceInfo `json:"deviceInfo"`
	Attributes      SyncAttributes    `json:"attributes"`
}

// SyncAttributes carries the union of all trait attributes. Each trait
// populates only its own fields; nil fields are omitted from the
// encoded JSON.
type SyncAttributes struct {
	AvailableArmLevels                   *traits.AvailableArmLevels     `json:"availableArmLevels,omitempty"`
	CommandOnlyBrightness                *bool                          `json:"commandOnlyBrightness,omitempty"`
	CommandOnlyColorSetting              *bool                          `json:"commandOnlyColorSetting,omitempty"`
	ColorModel                           *traits.ColorModel             `json:"colorModel,omitempty"`
	ColorTemperatureRange                *traits.ColorTemperatureRange  `json:"colorTemperatureRange,omitempty"`
	SupportedCookingModes                []traits.CookingMode           `json:"supportedCookingModes,omitempty"`
	FoodPresets                          []traits.FoodPreset            `json:"foodPresets,omitempty"`
	SupportedDispenseItems               []traits.DispenseItem          `json:"supportedDispenseItems,omitempty"`
	SupportedDispensePresets             []traits.DispensePreset        `json:"supportedDispensePresets,omitempty"`
	QueryOnlyEnergyStorage               *bool                          `json:"queryOnlyEnergyStorage,omitempty"`
	EnergyStorageDistanceUnitForUX       *traits.UXDistanceUnit         `json:"energyStorageDistanceUnitForUX,omitempty"`
	IsRechargeable                       *bool                          `json:"isRechargeable,omitempty"`
	Reversible                           *bool                          `json:"reversible,omitempty"`
	CommandOnlyFanSpeed                  *bool                          `json:"commandOnlyFanSpeed,omitempty"`
	AvailableFanSpeeds                   *traits.AvailableFanSpeeds     `json:"availableFanSpeeds,omitempty"`
	SupportsFanSpeedPercent              *bool                          `json:"supportsFanSpeedPercent,omitempty"`
	AvailableFillLevels                  *traits.AvailableFillLevels    `json:"availableFillLevels,omitempty"`
	HumiditySetPointRange                *traits.HumiditySetPointRange  `json:"humiditySetpointRange,omitempty"`
	CommandOnlyHumiditySetting           *bool                          `json:"commandOnlyHumiditySetting,omitempty"`
	QueryOnlyHumiditySetting             *bool                          `json:"queryOnlyHumiditySetting,omitempty"`
	AvailableInputs                      []traits.AvailableInput        `json:"availableInputs,omitempty"`
	CommandOnlyInputSelector             *bool                          `json:"commandOnlyInputSelector,omitempty"`
	OrderedInputs                        *bool                          `json:"orderedInputs,omitempty"`
	DefaultColorLoopDuration             *int                           `json:"defaultColorLoopDuration,omitempty"`
	DefaultSleepDuration                 *int                           `json:"defaultSleepDuration,omitempty"`
	DefaultWakeDuration                  *int                           `json:"defaultWakeDuration,omitempty"`
	SupportedEffects                     []traits.LightEffectType       `json:"supportedEffects,omitempty"`
	SupportActivityState                 *bool                          `json:"supportActivityState,omitempty"`
	SupportPlaybackState                 *bool                          `json:"supportPlaybackState,omitempty"`
	AvailableModes                       []traits.AvailableMode         `json:"availableModes,omitempty"`
	CommandOnlyModes                     *bool                          `json:"commandOnlyModes,omitempty"`
	QueryOnlyModes                       *bool                          `json:"queryOnlyModes,omitempty"`
	SupportsEnablingGuestNetwork         *bool                          `json:"supportsEnablingGuestNetwork,omitempty"`
	SupportsDisablingGuestNetwork        *bool                          `json:"supportsDisablingGuestNetwork,omitempty"`
	SupportsGettingGuestNetworkPassword  *bool                          `json:"supportsGettingGuestNetworkPassword,omitempty"`
	NetworkProfiles                      []string                       `json:"networkProfiles,omitempty"`
	SupportsEnablingNetworkProfile       *bool                          `json:"supportsEnablingNetworkProfile,omitempty"`
	SupportsDisablingNetworkProfile      *bool                          `json:"supportsDisablingNetworkProfile,omitempty"`
	SupportsNetworkDownloadSpeedTest     *bool                          `json:"supportsNetworkDownloadSpeedTest,omitempty"`
	SupportsNetworkUploadSpeedTest       *bool                          `json:"supportsNetworkUploadSpeedTest,omitempty"`
	CommandOnlyOnOff                     *bool                          `json:"commandOnlyOnOff,omitempty"`
	QueryOnlyOnOff                       *bool                          `json:"queryOnlyOnOff,omitempty"`
	DiscreteOnlyOpenClose                *bool                          `json:"discreteOnlyOpenClose,omitempty"`
	OpenDirection                        []traits.OpenDirection         `json:"openDirection,omitempty"`
	CommandOnlyOpenClose                 *bool                          `json:"commandOnlyOpenClose,omitempty"`
	QueryOnlyOpenClose                   *bool                          `json:"queryOnlyOpenClose,omitempty"`
	SupportsDegrees                      *bool                          `json:"supportsDegrees,omitempty"`
	SupportsPercent                      *bool                          `json:"supportsPercent,omitempty"`
	RotationDegreesRange                 *traits.RotationDegreeRange    `json:"rotationDegreesRange,omitempty"`
	SupportsContinuousRotation           *bool                          `json:"supportsContinuousRotation,omitempty"`
	CommandOnlyRotation                  *bool                          `json:"commandOnlyRotation,omitempty"`
	SceneReversible                      *bool                          `json:"sceneReversible,omitempty"`
	SensorStatesSupported                []traits.SupportedSensorState  `json:"sensorStatesSupported,omitempty"`
	Pausable                             *bool                          `json:"pausable,omitempty"`
	AvailableZones                       []string                       `json:"availableZones,omitempty"`
	TemperatureRange                     *traits.TemperatureRange       `json:"temperatureRange,omitempty"`
	TemperatureStepCelsius               *float64                       `json:"temperatureStepCelsius,omitempty"`
	TemperatureUnitForUX                 *traits.TemperatureUnit        `json:"temperatureUnitForUX,omitempty"`
	CommandOnlyTemperatureControl        *bool                          `json:"commandOnlyTemperatureControl,omitempty"`
	QueryOnlyTemperatureControl          *bool                          `json:"queryOnlyTemperatureControl,omitempty"`
	AvailableThermostatModes             []traits.ThermostatMode        `json:"availableThermostatModes,omitempty"`
	ThermostatTemperatureRange           *traits.TemperatureRange       `json:"thermostatTemperatureRange,omitempty"`
	ThermostatTemperatureUnit            *traits.TemperatureUnit        `json:"thermostatTemperatureUnit,omitempty"`
	BufferRangeCelsius                   *float64                       `json:"bufferRangeCelsius,omitempty"`
	CommandOnlyTemperatureSetting        *bool                          `json:"commandOnlyTemperatureSetting,omitempty"`
	QueryOnlyTemperatureSetting          *bool                          `json:"queryOnlyTemperatureSetting,omitempty"`
	AvailableApplications                []traits.AvailableApplication  `json:"availableApplications,omitempty"`
	CameraStreamSupportedProtocols       []traits.CameraStreamProtocol  `json:"cameraStreamSupportedProtocols,omitempty"`
	CameraStreamNeedAuthToken            *bool                          `json:"cameraStreamNeedAuthToken,omitempty"`
	AvailableChannels                    []traits.AvailableChannel      `json:"availableChannels,omitempty"`
	CommandOnlyChannels                  *bool                          `json:"commandOnlyChannels,omitempty"`
	MaxTimerLimitSec                     *int                           `json:"maxTimerLimitSec,omitempty"`
	CommandOnlyTimer                     *bool                          `json:"commandOnlyTimer,omitempty"`
	AvailableToggles                     []traits.AvailableToggle       `json:"availableToggles,omitempty"`
	CommandOnlyToggles                   *bool                          `json:"commandOnlyToggles,omitempty"`
	QueryOnlyToggles                     *bool                          `json:"queryOnlyToggles,omitempty"`
	TransportControlSupportedCommands    []traits.TransportControlCommand `json:"transportControlSupportedCommands,omitempty"`
	VolumeMaxLevel                       *int                           `json:"volumeMaxLevel,omitempty"`
	VolumeCanMuteAndUnmute               *bool                          `json:"volumeCanMuteAndUnmute,omitempty"`
	VolumeDefaultPercentage              *int                           `json:"volumeDefaultPercentage,omitempty"`
	LevelStepSize                        *int                           `json:"levelStepSize,omitempty"`
	CommandOnlyVolume                    *bool                          `json:"commandOnlyVolume,omitempty"`
}
