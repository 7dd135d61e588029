package traits

// Dock is for self-mobile devices that can be commanded to return for
// charging.
type Dock interface {
	// IsDocked reports whether the device is connected to its docking
	// station.
	IsDocked() (bool, error)

	// DockDevice sends the device back to its dock.
	DockDevice() error
}
