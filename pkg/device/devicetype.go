package device

// Type is the kind of device being controlled, used by the platform to
// pick icons, grammar and default behavior. The value is the full wire
// identifier.
type Type string

const (
	TypeACUnit                 Type = "action.devices.types.AC_UNIT"
	TypeAirCooler              Type = "action.devices.types.AIRCOOLER"
	TypeAirFreshener           Type = "action.devices.types.AIRFRESHENER"
	TypeAirPurifier            Type = "action.devices.types.AIRPURIFIER"
	TypeAudioVideoReceiver     Type = "action.devices.types.AUDIO_VIDEO_RECEIVER"
	TypeAwning                 Type = "action.devices.types.AWNING"
	TypeBathtub                Type = "action.devices.types.BATHTUB"
	TypeBed                    Type = "action.devices.types.BED"
	TypeBlender                Type = "action.devices.types.BLENDER"
	TypeBlinds                 Type = "action.devices.types.BLINDS"
	TypeBoiler                 Type = "action.devices.types.BOILER"
	TypeCamera                 Type = "action.devices.types.CAMERA"
	TypeCarbonMonoxideDetector Type = "action.devices.types.CARBON_MONOXIDE_DETECTOR"
	TypeCharger                Type = "action.devices.types.CHARGER"
	TypeCloset                 Type = "action.devices.types.CLOSET"
	TypeCoffeeMaker            Type = "action.devices.types.COFFEE_MAKER"
	TypeCooktop                Type = "action.devices.types.COOKTOP"
	TypeCurtain                Type = "action.devices.types.CURTAIN"
	TypeDehumidifier           Type = "action.devices.types.DEHUMIDIFIER"
	TypeDehydrator             Type = "action.devices.types.DEHYDRATOR"
	TypeDishwasher             Type = "action.devices.types.DISHWASHER"
	TypeDoor                   Type = "action.devices.types.DOOR"
	TypeDoorbell               Type = "action.devices.types.DOORBELL"
	TypeDrawer                 Type = "action.devices.types.DRAWER"
	TypeDryer                  Type = "action.devices.types.DRYER"
	TypeFan                    Type = "action.devices.types.FAN"
	TypeFaucet                 Type = "action.devices.types.FAUCET"
	TypeFireplace              Type = "action.devices.types.FIREPLACE"
	TypeFreezer                Type = "action.devices.types.FREEZER"
	TypeFryer                  Type = "action.devices.types.FRYER"
	TypeGarage                 Type = "action.devices.types.GARAGE"
	TypeGate                   Type = "action.devices.types.GATE"
	TypeGrill                  Type = "action.devices.types.GRILL"
	TypeHeater                 Type = "action.devices.types.HEATER"
	TypeHood                   Type = "action.devices.types.HOOD"
	TypeHumidifier             Type = "action.devices.types.HUMIDIFIER"
	TypeKettle                 Type = "action.devices.types.KETTLE"
	TypeLight                  Type = "action.devices.types.LIGHT"
	TypeLock                   Type = "action.devices.types.LOCK"
	TypeMicrowave              Type = "action.devices.types.MICROWAVE"
	TypeMop                    Type = "action.devices.types.MOP"
	TypeMower                  Type = "action.devices.types.MOWER"
	TypeMulticooker            Type = "action.devices.types.MULTICOOKER"
	TypeNetwork                Type = "action.devices.types.NETWORK"
	TypeOutlet                 Type = "action.devices.types.OUTLET"
	TypeOven                   Type = "action.devices.types.OVEN"
	TypePergola                Type = "action.devices.types.PERGOLA"
	TypePetFeeder              Type = "action.devices.types.PETFEEDER"
	TypePressureCooker         Type = "action.devices.types.PRESSURECOOKER"
	TypeRadiator               Type = "action.devices.types.RADIATOR"
	TypeRefrigerator           Type = "action.devices.types.REFRIGERATOR"
	TypeRemoteControl          Type = "action.devices.types.REMOTECONTROL"
	TypeRouter                 Type = "action.devices.types.ROUTER"
	TypeScene                  Type = "action.devices.types.SCENE"
	TypeSecuritySystem         Type = "action.devices.types.SECURITY_SYSTEM"
	TypeSettop                 Type = "action.devices.types.SETTOP"
	TypeShower                 Type = "action.devices.types.SHOWER"
	TypeShutter                Type = "action.devices.types.SHUTTER"
	TypeSmokeDetector          Type = "action.devices.types.SMOKE_DETECTOR"
	TypeSoundbar               Type = "action.devices.types.SOUNDBAR"
	TypeSousVide               Type = "action.devices.types.SOUSVIDE"
	TypeSpeaker                Type = "action.devices.types.SPEAKER"
	TypeSprinkler              Type = "action.devices.types.SPRINKLER"
	TypeStandMixer             Type = "action.devices.types.STANDMIXER"
	TypeStreamingBox           Type = "action.devices.types.STREAMING_BOX"
	TypeStreamingSoundbar      Type = "action.devices.types.STREAMING_SOUNDBAR"
	TypeStreamingStick         Type = "action.devices.types.STREAMING_STICK"
	TypeSwitch                 Type = "action.devices.types.SWITCH"
	TypeThermostat             Type = "action.devices.types.THERMOSTAT"
	TypeTV                     Type = "action.devices.types.TV"
	TypeVacuum                 Type = "action.devices.types.VACUUM"
	TypeValve                  Type = "action.devices.types.VALVE"
	TypeWasher                 Type = "action.devices.types.WASHER"
	TypeWaterHeater            Type = "action.devices.types.WATERHEATER"
	TypeWaterPurifier          Type = "action.devices.types.WATERPURIFIER"
	TypeWaterSoftener          Type = "action.devices.types.WATERSOFTENER"
	TypeWindow                 Type = "action.devices.types.WINDOW"
	TypeYogurtMaker            Type = "action.devices.types.YOGURTMAKER"
)

// String returns the wire identifier of the type.
func (t Type) String() string {
	return string(t)
}
