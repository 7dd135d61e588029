package traits

// RotationDegreeRange is the range in degrees a device can rotate.
type RotationDegreeRange struct {
	RotationDegreesMin float64 `json:"rotationDegreesMin"`
	RotationDegreesMax float64 `json:"rotationDegreesMax"`
}

// Rotation belongs to devices that support rotation, such as blinds with
// rotatable slats.
type Rotation interface {
	// SupportsDegrees is true if the device allows rotation by degree.
	SupportsDegrees() (bool, error)

	// SupportsPercent is true if the device allows rotation by percent.
	SupportsPercent() (bool, error)

	// RotationDegreeRange is the range in degrees the device can rotate.
	RotationDegreeRange() (RotationDegreeRange, error)

	// SupportsContinuousRotation is true if the device allows continuous
	// rotation, wrapping relative commands around the supported range. nil
	// means unspecified (default false).
	SupportsContinuousRotation() (*bool, error)

	// CommandOnlyRotation indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyRotation() (*bool, error)

	// RotationDegrees is the current rotation within the degree range,
	// relative to clockwise rotation.
	RotationDegrees() (float64, error)

	// RotationPercent is the current rotation as a percent, where 0
	// corresponds to closed and 100 to open.
	RotationPercent() (float64, error)

	// SetRotationDegrees rotates the device to an absolute clockwise
	// position in degrees, within the degree range.
	SetRotationDegrees(degrees float64) error

	// SetRotationPercent rotates the device to an absolute position in
	// percent.
	SetRotationPercent(percent float64) error
}
