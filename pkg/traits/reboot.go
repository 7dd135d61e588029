package traits

// Reboot belongs to devices that support rebooting as a single action, such
// as routers.
type Reboot interface {
	// RebootDevice reboots the device.
	RebootDevice() error
}
