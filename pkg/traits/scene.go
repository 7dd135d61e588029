package traits

// Scene is a virtual device grouping a set of commands behind a single
// activation, such as "party mode". Scenes map 1:1 to their device type and
// do not combine with other traits; each scene is its own device with
// user-provided names.
type Scene interface {
	// IsReversible indicates the scene supports deactivation. Only
	// relevant for scenes that modify state and remember the previous
	// state. nil means unspecified (default false).
	IsReversible() (*bool, error)

	// Activate activates the scene.
	Activate() error

	// Deactivate deactivates the scene. Only called when IsReversible
	// reports true.
	Deactivate() error
}
