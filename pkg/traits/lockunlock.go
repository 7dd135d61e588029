package traits

// LockUnlock belongs to devices that support locking and unlocking, or
// reporting a locked state.
//
// Domain failures are reported with ErrRemoteSetDisabled,
// ErrDeviceJammingDetected, ErrNotSupported, ErrAlreadyLocked or
// ErrAlreadyUnlocked.
type LockUnlock interface {
	// IsLocked reports whether the device is currently locked.
	IsLocked() (bool, error)

	// IsJammed reports whether the device is jammed, in which case its
	// locked state cannot be determined.
	IsJammed() (bool, error)

	// SetLocked locks (true) or unlocks (false) the device.
	SetLocked(lock bool) error
}
