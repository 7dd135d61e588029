package traits

// UXDistanceUnit is the distance unit used in responses to the user.
type UXDistanceUnit string

const (
	DistanceKilometers UXDistanceUnit = "KILOMETERS"
	DistanceMiles      UXDistanceUnit = "MILES"
)

// CapacityState is a qualitative description of an energy capacity level.
type CapacityState string

const (
	CapacityCriticallyLow CapacityState = "CRITICALLY_LOW"
	CapacityLow           CapacityState = "LOW"
	CapacityMedium        CapacityState = "MEDIUM"
	CapacityHigh          CapacityState = "HIGH"
	CapacityFull          CapacityState = "FULL"
)

// CapacityUnit is the unit of a numeric capacity value.
type CapacityUnit string

const (
	CapacityUnitSeconds       CapacityUnit = "SECONDS"
	CapacityUnitMiles         CapacityUnit = "MILES"
	CapacityUnitKilometers    CapacityUnit = "KILOMETERS"
	CapacityUnitPercentage    CapacityUnit = "PERCENTAGE"
	CapacityUnitKilowattHours CapacityUnit = "KILOWATT_HOURS"
)

// CapacityValue is one unit/value pair of energy capacity information.
type CapacityValue struct {
	RawValue int          `json:"rawValue"`
	Unit     CapacityUnit `json:"unit"`
}

// EnergyStorage belongs to devices that store energy in a battery and
// potentially recharge, or charge another device. It supports starting and
// stopping charging and checking current charge levels.
//
// ErrDeviceUnplugged reports a charge attempt on an unplugged device.
type EnergyStorage interface {
	// QueryOnlyEnergyStorage is true if the device only supports queries
	// about stored energy levels and cannot start or stop charging.
	QueryOnlyEnergyStorage() (bool, error)

	// DistanceUnitForUX is the distance unit used in responses to the
	// user.
	DistanceUnitForUX() (UXDistanceUnit, error)

	// IsRechargeable is true if the device can accept the Charge command
	// and may report capacityUntilFull, isCharging and isPluggedIn.
	IsRechargeable() (bool, error)

	// DescriptiveCapacityRemaining qualitatively describes the remaining
	// energy capacity, for when there is no numeric data. Numeric data is
	// preferred when both are available.
	DescriptiveCapacityRemaining() (CapacityState, error)

	// CapacityRemaining holds the energy capacity the device currently
	// has. nil means not reported.
	CapacityRemaining() ([]CapacityValue, error)

	// CapacityUntilFull holds the capacity remaining until the device is
	// fully charged. nil means not reported.
	CapacityUntilFull() ([]CapacityValue, error)

	// IsCharging reports whether the device is currently charging. nil
	// means not reported.
	IsCharging() (*bool, error)

	// IsPluggedIn reports whether the device is plugged in. The device can
	// be plugged in without actively charging. nil means not reported.
	IsPluggedIn() (*bool, error)

	// Charge starts (true) or stops (false) charging. Never called on
	// devices that are not rechargeable.
	Charge(charge bool) error
}
