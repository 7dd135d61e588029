package traits

// AvailableToggle is one binary setting of a device.
type AvailableToggle struct {
	// Name is the internal name of the toggle, used in commands and
	// states. Shared across all languages.
	Name string `json:"name"`
	// NameValues holds the toggle name synonyms per language.
	NameValues []ToggleNameValue `json:"name_values"`
}

// ToggleNameValue lists the synonyms for a toggle in one language. The
// first string is the canonical name.
type ToggleNameValue struct {
	NameSynonym []string `json:"name_synonym"`
	Lang        Language `json:"lang"`
}

// Toggles belongs to devices with settings that exist in only one of two
// states, such as a physical on/off button. Settings with more states, or
// with a state where neither binary option is selected, are better
// represented as Modes.
type Toggles interface {
	// AvailableToggles lists the toggles of the device.
	AvailableToggles() ([]AvailableToggle, error)

	// CommandOnlyToggles indicates one-way (true) or two-way (false)
	// communication. nil means unspecified.
	CommandOnlyToggles() (*bool, error)

	// QueryOnlyToggles indicates the device can only be queried for state.
	// nil means unspecified.
	QueryOnlyToggles() (*bool, error)

	// CurrentToggleSettings maps each toggle name to its current state.
	CurrentToggleSettings() (map[string]bool, error)

	// SetToggle sets the named toggle to the given state.
	SetToggle(name string, state bool) error
}
