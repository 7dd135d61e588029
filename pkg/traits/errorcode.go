package traits

// ErrorCode is a protocol-defined error or exception code. It doubles as an
// error value: returning an ErrorCode (or an error wrapping one) from a trait
// method reports the code verbatim to the platform as errorCode. Any other
// error is treated as an internal fault and is not shown to the platform.
type ErrorCode string

// Error implements the error interface.
func (e ErrorCode) Error() string { return string(e) }

// Generic error codes shared across traits.
const (
	ErrDeviceOffline      ErrorCode = "deviceOffline"
	ErrDeviceTurnedOff    ErrorCode = "deviceTurnedOff"
	ErrDeviceNotFound     ErrorCode = "deviceNotFound"
	ErrHardError          ErrorCode = "hardError"
	ErrTransientError     ErrorCode = "transientError"
	ErrValueOutOfRange    ErrorCode = "valueOutOfRange"
	ErrNotSupported       ErrorCode = "notSupported"
	ErrProtocolError      ErrorCode = "protocolError"
	ErrUnknownError       ErrorCode = "unknownError"
	ErrActionNotAvailable ErrorCode = "actionNotAvailable"
	ErrAlreadyInState     ErrorCode = "alreadyInState"
)

// ArmDisarm error codes.
const (
	ErrDeviceTampered        ErrorCode = "deviceTampered"
	ErrPassphraseIncorrect   ErrorCode = "passphraseIncorrect"
	ErrPinIncorrect          ErrorCode = "pinIncorrect"
	ErrSecurityRestrictions  ErrorCode = "securityRestrictions"
	ErrTooManyFailedAttempts ErrorCode = "tooManyFailedAttempts"
	ErrUserCancelled         ErrorCode = "userCancelled"
)

// LockUnlock error codes.
const (
	ErrRemoteSetDisabled     ErrorCode = "remoteSetDisabled"
	ErrDeviceJammingDetected ErrorCode = "deviceJammingDetected"
	ErrAlreadyLocked         ErrorCode = "alreadyLocked"
	ErrAlreadyUnlocked       ErrorCode = "alreadyUnlocked"
)

// FanSpeed error codes.
const (
	ErrMaxSpeedReached ErrorCode = "maxSpeedReached"
	ErrMinSpeedReached ErrorCode = "minSpeedReached"
)

// Cook error codes.
const (
	ErrDeviceDoorOpen               ErrorCode = "deviceDoorOpen"
	ErrDeviceLidOpen                ErrorCode = "deviceLidOpen"
	ErrFractionalAmountNotSupported ErrorCode = "fractionalAmountNotSupported"
	ErrAmountAboveLimit             ErrorCode = "amountAboveLimit"
	ErrUnknownFoodPreset            ErrorCode = "unknownFoodPreset"
)

// Dispense error codes.
const (
	ErrDispenseAmountRemainingExceeded      ErrorCode = "dispenseAmountRemainingExceeded"
	ErrDispenseAmountAboveLimit             ErrorCode = "dispenseAmountAboveLimit"
	ErrDispenseAmountBelowLimit             ErrorCode = "dispenseAmountBelowLimit"
	ErrDispenseFractionalAmountNotSupported ErrorCode = "dispenseFractionalAmountNotSupported"
	ErrGenericDispenseNotSupported          ErrorCode = "genericDispenseNotSupported"
	ErrDispenseNotSupported                 ErrorCode = "dispenseNotSupported"
	ErrDispenseFractionalUnitNotSupported   ErrorCode = "dispenseFractionalUnitNotSupported"
	ErrDeviceCurrentlyDispensing            ErrorCode = "deviceCurrentlyDispensing"
	ErrDeviceClogged                        ErrorCode = "deviceClogged"
	ErrDeviceBusy                           ErrorCode = "deviceBusy"
)

// Dispense exception codes. Exceptions are non-blocking conditions; they
// are reported with the same mechanism as error codes.
const (
	ExceptionAmountRemainingLow ErrorCode = "amountRemainingLow"
	ExceptionUserNeedsToWait    ErrorCode = "userNeedsToWait"
)

// EnergyStorage error codes.
const (
	ErrDeviceUnplugged ErrorCode = "deviceUnplugged"
)

// InputSelector error codes.
const (
	ErrUnsupportedInput ErrorCode = "unsupportedInput"
)

// NetworkControl error codes.
const (
	ErrNetworkProfileNotRecognized ErrorCode = "networkProfileNotRecognized"
	ErrNetworkSpeedTestInProgress  ErrorCode = "networkSpeedTestInProgress"
)

// OpenClose error codes.
const (
	ErrLockedState ErrorCode = "lockedState"
)
