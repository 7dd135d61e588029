package traits

// AvailableMode is one "n-way" mode of a device. Each mode has two or more
// settings of which exactly one can be active at a time.
type AvailableMode struct {
	// Name is the internal name of the mode, used in commands and states.
	// Shared across all languages.
	Name string `json:"name"`
	// NameValues holds the mode name synonyms per language.
	NameValues []ModeNameValue `json:"name_values"`
	// Settings lists the supported settings. At least 2 items.
	Settings []ModeSetting `json:"settings"`
	// Ordered enables increase/decrease grammar in the order (increasing)
	// of the settings array.
	Ordered bool `json:"ordered"`
}

// ModeSetting is one setting of a mode.
type ModeSetting struct {
	// SettingName is the internal name of the setting, used in commands
	// and states. Shared across all languages.
	SettingName string `json:"setting_name"`
	// SettingValues holds the setting synonyms per language.
	SettingValues []ModeSettingValue `json:"setting_values"`
}

// ModeSettingValue lists the synonyms for a setting in one language. The
// first string is the canonical name.
type ModeSettingValue struct {
	SettingSynonym []string `json:"setting_synonym"`
	Lang           Language `json:"lang"`
}

// ModeNameValue lists the synonyms for a mode in one language. The first
// string is the canonical name.
type ModeNameValue struct {
	NameSynonym []string `json:"name_synonym"`
	Lang        Language `json:"lang"`
}

// Modes belongs to devices with an arbitrary number of independent modes in
// which the modes and settings are unique per device or device type. A
// washing machine, for instance, can have modes for load size and
// temperature; each is independent but can be in only one setting at a
// time. Settings that are simply on or off belong in Toggles instead.
type Modes interface {
	// AvailableModes lists the modes of the device.
	AvailableModes() ([]AvailableMode, error)

	// CommandOnlyModes indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyModes() (*bool, error)

	// QueryOnlyModes indicates the device can only be queried for state.
	// nil means unspecified (default false).
	QueryOnlyModes() (*bool, error)

	// CurrentModeSettings maps each mode name to its current setting name.
	CurrentModeSettings() (map[string]string, error)

	// UpdateModeSetting sets the given mode to the given setting.
	UpdateModeSetting(modeName, settingName string) error
}
