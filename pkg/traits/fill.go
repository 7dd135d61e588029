package traits

// AvailableFillLevels describes the fill levels of a device.
type AvailableFillLevels struct {
	// Levels lists the level names and their language-specific synonyms.
	Levels []FillLevel `json:"levels"`
	// Ordered enables increase/decrease grammar in the order of the levels
	// array.
	Ordered bool `json:"ordered"`
	// SupportsFillPercent is true if the device accepts adjusting the
	// level by percentage.
	SupportsFillPercent bool `json:"supports_fill_percent"`
}

// FillLevel is one named fill level.
type FillLevel struct {
	// LevelName is the internal name of the level. Shared across all
	// languages.
	LevelName string `json:"level_name"`
	// LevelValues holds the synonyms for the level per language.
	LevelValues []FillLevelValue `json:"level_values"`
}

// FillLevelValue lists the synonyms for a fill level in one language. The
// first string is the canonical name.
type FillLevelValue struct {
	LevelSynonym []string `json:"level_synonym"`
	Lang         Language `json:"lang"`
}

// Fill applies to devices that support being filled, such as a bathtub.
type Fill interface {
	// AvailableFillLevels describes the fill levels of the device.
	AvailableFillLevels() (AvailableFillLevels, error)

	// IsFilled is true if the device is filled to any level, false if
	// completely drained.
	IsFilled() (bool, error)

	// CurrentFillLevel returns the current level name from the
	// availableFillLevels attribute. Required if that attribute is set.
	CurrentFillLevel() (*string, error)

	// CurrentFillPercent returns the current fill percentage. Required if
	// the supportsFillPercent attribute is set.
	CurrentFillPercent() (*float64, error)

	// SetFill fills (true) or drains (false) the device.
	SetFill(fill bool) error

	// FillToLevel fills the device to the named level from the
	// availableFillLevels attribute.
	FillToLevel(level string) error

	// FillToPercent fills the device to the requested percentage.
	FillToPercent(percent float64) error
}
