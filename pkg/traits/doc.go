// Package traits defines the capability interfaces a device may implement.
//
// Each trait is an independent interface covering one slice of device
// functionality: OnOff for binary power, Brightness for dimming, LockUnlock
// for locks, and so on. A concrete device implements any subset of these
// interfaces and registers each one on its device.Device wrapper; the
// registered set determines which attributes appear in SYNC, which state
// fields appear in QUERY, and which commands the device accepts in EXECUTE.
//
// # Getters and setters
//
// Attribute getters feed SYNC, state getters feed QUERY, and command methods
// are invoked by EXECUTE. Optional values are returned as pointers or nil
// slices; a nil result omits the field from the response.
//
// # Errors
//
// A method may fail in two ways. Returning an ErrorCode (or an error
// wrapping one) reports a protocol-defined failure verbatim to the platform
// as errorCode. Returning any other error is treated as an internal fault:
// the platform sees only a generic offline status while the error text stays
// local. See the package-level error code constants for the shared
// vocabulary; traits with their own failure modes document them alongside
// the interface.
package traits
