package traits

// AvailableArmLevels describes the security levels of an arm/disarm
// device.
type AvailableArmLevels struct {
	// Levels lists the supported security levels.
	Levels []ArmLevel `json:"levels"`
	// Ordered enables increase/decrease grammar in the order (increasing)
	// of the levels array.
	Ordered bool `json:"ordered"`
}

// ArmLevel is one security level of an arm/disarm device.
type ArmLevel struct {
	// LevelName is the internal name used in commands and states. Shared
	// across all languages.
	LevelName string `json:"level_name"`
	// LevelValues holds the user-friendly names per language.
	LevelValues []ArmLevelValue `json:"level_values"`
}

// ArmLevelValue lists the synonyms for a security level in one language.
// The first item is the canonical name.
type ArmLevelValue struct {
	LevelSynonym []string `json:"level_synonym"`
	Lang         Language `json:"lang"`
}

// ArmDisarm supports arming and disarming, as used in security systems.
//
// Domain failures are reported with ErrAlreadyInState, ErrDeviceTampered,
// ErrPassphraseIncorrect, ErrPinIncorrect, ErrSecurityRestrictions,
// ErrTooManyFailedAttempts or ErrUserCancelled.
type ArmDisarm interface {
	// AvailableArmLevels describes the supported security levels. nil means
	// the device supports only one level.
	AvailableArmLevels() ([]ArmLevel, error)

	// IsOrdered reports whether increase/decrease grammar applies to the
	// levels array order.
	IsOrdered() (bool, error)

	// IsArmed reports whether the device is currently armed.
	IsArmed() (bool, error)

	// CurrentArmLevel returns the name of the current security level, if
	// multiple levels exist.
	CurrentArmLevel() (string, error)

	// ExitAllowance returns the time in seconds the user has to leave
	// before the current arm level takes effect.
	ExitAllowance() (int, error)

	// Arm arms (true) or disarms (false) the device.
	Arm(arm bool) error

	// CancelArm cancels an in-progress arming.
	CancelArm() error

	// ArmWithLevel arms the device to the named level.
	ArmWithLevel(arm bool, level string) error
}
