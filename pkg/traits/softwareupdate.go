package traits

// SoftwareUpdate belongs to devices that support software updates, such as
// a router. Optionally these devices may report the time of the last
// successful update.
type SoftwareUpdate interface {
	// LastSoftwareUpdateUnixTimestampSec is the Unix timestamp of the last
	// successful software update.
	LastSoftwareUpdateUnixTimestampSec() (int64, error)

	// PerformUpdate updates the device.
	PerformUpdate() error
}
