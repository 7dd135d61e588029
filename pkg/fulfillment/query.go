package fulfillment

import (
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// QueryPayload is the QUERY response payload, keyed by device id.
// ErrorCode and DebugString report a payload-wide failure.
type QueryPayload struct {
	ErrorCode   string                      `json:"errorCode,omitempty"`
	DebugString string                      `json:"debugString,omitempty"`
	Devices     map[string]QueryDeviceState `json:"devices"`
}

// QueryDeviceState is the reported state of one device. On, Online and
// Status are always present. The embedded DeviceState carries the
// per-trait state and is left zero when Status is not SUCCESS.
//
// The protocol requires On even for devices without an on/off trait;
// it is true except when state collection failed with an error. For
// devices with an on/off trait the collector overwrites it with the
// actual state.
type QueryDeviceState struct {
	On        bool   `json:"on"`
	Online    bool   `json:"online"`
	Status    Status `json:"status"`
	ErrorCode string `json:"errorCode,omitempty"`
	DeviceState
}

// DeviceState is the union of all per-trait QUERY state fields. Each
// trait populates only its own fields; nil fields are omitted from
// the encoded JSON.
type DeviceState struct {
	CurrentApplication                    *string                               `json:"currentApplication,omitempty"`
	IsArmed                               *bool                                 `json:"isArmed,omitempty"`
	CurrentArmLevel                       *string                               `json:"currentArmLevel,omitempty"`
	ExitAllowance                         *int                                  `json:"exitAllowance,omitempty"`
	Brightness                            *int                                  `json:"brightness,omitempty"`
	Color                                 *traits.Color                         `json:"color,omitempty"`
	CurrentCookingMode                    *traits.CookingMode                   `json:"currentCookingMode,omitempty"`
	CurrentFoodPreset                     *string                               `json:"currentFoodPreset,omitempty"`
	CurrentFoodQuantity                   *float64                              `json:"currentFoodQuantity,omitempty"`
	CurrentFoodUnit                       *traits.SizeUnit                      `json:"currentFoodUnit,omitempty"`
	DispenseItems                         []traits.DispenseItemState            `json:"dispenseItems,omitempty"`
	IsDocked                              *bool                                 `json:"isDocked,omitempty"`
	DescriptiveCapacityRemaining          *traits.CapacityState                 `json:"descriptiveCapacityRemaining,omitempty"`
	CapacityRemaining                     []traits.CapacityValue                `json:"capacityRemaining,omitempty"`
	CapacityUntilFull                     []traits.CapacityValue                `json:"capacityUntilFull,omitempty"`
	IsCharging                            *bool                                 `json:"isCharging,omitempty"`
	IsPluggedIn                           *bool                                 `json:"isPluggedIn,omitempty"`
	CurrentFanSpeedSetting                *string                               `json:"currentFanSpeedSetting,omitempty"`
	CurrentFanSpeedPercent                *float64                              `json:"currentFanSpeedPercent,omitempty"`
	IsFilled                              *bool                                 `json:"isFilled,omitempty"`
	CurrentFillLevel                      *string                               `json:"currentFillLevel,omitempty"`
	CurrentFillPercent                    *float64                              `json:"currentFillPercent,omitempty"`
	HumiditySetpointPercent               *int                                  `json:"humiditySetpointPercent,omitempty"`
	HumidityAmbientPercent                *int                                  `json:"humidityAmbientPercent,omitempty"`
	CurrentInput                          *string                               `json:"currentInput,omitempty"`
	ActiveLightEffect                     *traits.LightEffectType               `json:"activeLightEffect,omitempty"`
	LightEffectEndUnixTimestampSec        *int64                                `json:"lightEffectEndUnixTimestampSec,omitempty"`
	IsLocked                              *bool                                 `json:"isLocked,omitempty"`
	IsJammed                              *bool                                 `json:"isJammed,omitempty"`
	ActivityState                         *traits.ActivityState                 `json:"activityState,omitempty"`
	PlaybackState                         *traits.PlaybackState                 `json:"playbackState,omitempty"`
	CurrentModeSetting                    map[string]string                     `json:"currentModeSetting,omitempty"`
	NetworkEnabled                        *bool                                 `json:"networkEnabled,omitempty"`
	NetworkSettings                       *traits.NetworkSettings               `json:"networkSettings,omitempty"`
	GuestNetworkEnabled                   *bool                                 `json:"guestNetworkEnabled,omitempty"`
	GuestNetworkSettings                  *traits.NetworkSettings               `json:"guestNetworkSettings,omitempty"`
	NumConnectedDevices                   *int                                  `json:"numConnectedDevices,omitempty"`
	NetworkUsageMB                        *float64                              `json:"networkUsageMB,omitempty"`
	NetworkUsageLimitMB                   *float64                              `json:"networkUsageLimitMB,omitempty"`
	NetworkUsageUnlimited                 *bool                                 `json:"networkUsageUnlimited,omitempty"`
	LastNetworkDownloadSpeedTest          *traits.DownloadSpeedTestResult       `json:"lastNetworkDownloadSpeedTest,omitempty"`
	LastNetworkUploadSpeedTest            *traits.UploadSpeedTestResult         `json:"lastNetworkUploadSpeedTest,omitempty"`
	NetworkSpeedTestInProgress            *bool                                 `json:"networkSpeedTestInProgress,omitempty"`
	NetworkProfilesState                  map[string]traits.NetworkProfileState `json:"networkProfilesState,omitempty"`
	OpenPercent                           *float64                              `json:"openPercent,omitempty"`
	OpenState                             []traits.OpenState                    `json:"openState,omitempty"`
	RotationDegrees                       *float64                              `json:"rotationDegrees,omitempty"`
	RotationPercent                       *float64                              `json:"rotationPercent,omitempty"`
	CurrentRunCycle                       []traits.CurrentRunCycle              `json:"currentRunCycle,omitempty"`
	CurrentTotalRemainingTime             *int                                  `json:"currentTotalRemainingTime,omitempty"`
	CurrentCycleRemainingTime             *int                                  `json:"currentCycleRemainingTime,omitempty"`
	CurrentSensorStateData                []traits.CurrentSensorState           `json:"currentSensorStateData,omitempty"`
	LastSoftwareUpdateUnixTimestampSec    *int64                                `json:"lastSoftwareUpdateUnixTimestampSec,omitempty"`
	IsRunning                             *bool                                 `json:"isRunning,omitempty"`
	IsPaused                              *bool                                 `json:"isPaused,omitempty"`
	ActiveZones                           []string                              `json:"activeZones,omitempty"`
	CurrentStatusReport                   []traits.CurrentStatusReport          `json:"currentStatusReport,omitempty"`
	TemperatureSetpointCelsius            *float64                              `json:"temperatureSetpointCelsius,omitempty"`
	TemperatureAmbientCelsius             *float64                              `json:"temperatureAmbientCelsius,omitempty"`
	ActiveThermostatMode                  *traits.ThermostatMode                `json:"activeThermostatMode,omitempty"`
	TargetTempReachedEstimateUnixTimestampSec *int64                            `json:"targetTempReachedEstimateUnixTimestampSec,omitempty"`
	ThermostatHumidityAmbient             *float64                              `json:"thermostatHumidityAmbient,omitempty"`
	ThermostatMode                        *traits.ThermostatMode                `json:"thermostatMode,omitempty"`
	ThermostatTemperatureAmbient          *float64                              `json:"thermostatTemperatureAmbient,omitempty"`
	ThermostatTemperatureSetpoint         *float64                              `json:"thermostatTemperatureSetpoint,omitempty"`
	ThermostatTemperatureSetpointHigh     *float64                              `json:"thermostatTemperatureSetpointHigh,omitempty"`
	ThermostatTemperatureSetpointLow      *float64                              `json:"thermostatTemperatureSetpointLow,omitempty"`
	TimerRemainingSec                     *int                                  `json:"timerRemainingSec,omitempty"`
	TimerPaused                           *bool                                 `json:"timerPaused,omitempty"`
	CurrentToggleSettings                 map[string]bool                       `json:"currentToggleSettings,omitempty"`
	CurrentVolume                         *int                                  `json:"currentVolume,omitempty"`
	IsMuted                               *bool                                 `json:"isMuted,omitempty"`
}
