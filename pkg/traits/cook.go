package traits

// CookingMode is one of the cooking modes a device supports.
type CookingMode string

const (
	CookingModeNone           CookingMode = "NONE"
	CookingModeUnknown        CookingMode = "UNKNOWN_COOKING_MODE"
	CookingModeBake           CookingMode = "BAKE"
	CookingModeBeat           CookingMode = "BEAT"
	CookingModeBlend          CookingMode = "BLEND"
	CookingModeBoil           CookingMode = "BOIL"
	CookingModeBrew           CookingMode = "BREW"
	CookingModeBroil          CookingMode = "BROIL"
	CookingModeConvectionBake CookingMode = "CONVECTION_BAKE"
	CookingModeCook           CookingMode = "COOK"
	CookingModeDefrost        CookingMode = "DEFROST"
	CookingModeDehydrate      CookingMode = "DEHYDRATE"
	CookingModeFerment        CookingMode = "FERMENT"
	CookingModeFry            CookingMode = "FRY"
	CookingModeGrill          CookingMode = "GRILL"
	CookingModeKnead          CookingMode = "KNEAD"
	CookingModeMicrowave      CookingMode = "MICROWAVE"
	CookingModeMix            CookingMode = "MIX"
	CookingModePressureCook   CookingMode = "PRESSURE_COOK"
	CookingModePuree          CookingMode = "PUREE"
	CookingModeRoast          CookingMode = "ROAST"
	CookingModeSaute          CookingMode = "SAUTE"
	CookingModeSlowCook       CookingMode = "SLOW_COOK"
	CookingModeSousVide       CookingMode = "SOUS_VIDE"
	CookingModeSteam          CookingMode = "STEAM"
	CookingModeStew           CookingMode = "STEW"
	CookingModeStir           CookingMode = "STIR"
	CookingModeWarm           CookingMode = "WARM"
	CookingModeWhip           CookingMode = "WHIP"
)

// FoodPreset is a preset for a certain type of food.
type FoodPreset struct {
	// FoodPresetName is the internal name used in commands and states.
	// Shared across all languages.
	FoodPresetName string `json:"food_preset_name"`
	// SupportedUnits lists all units the device supports for this food.
	SupportedUnits []SizeUnit `json:"supported_units"`
	// FoodSynonyms holds the food name synonyms per language.
	FoodSynonyms []Synonym `json:"food_synonyms"`
}

// CookingConfig carries the parameters of a Cook start command.
type CookingConfig struct {
	// CookingMode is the requested mode, if specified.
	CookingMode CookingMode
	// FoodPreset is the requested preset name, if specified.
	FoodPreset string
	// Quantity is the food quantity requested, if specified.
	Quantity *int
	// Unit is the unit associated with Quantity, if specified.
	Unit SizeUnit
}

// Cook belongs to devices that can cook food according to food presets and
// supported cooking modes.
//
// Domain failures are reported with ErrDeviceDoorOpen, ErrDeviceLidOpen,
// ErrFractionalAmountNotSupported, ErrAmountAboveLimit or
// ErrUnknownFoodPreset.
type Cook interface {
	// SupportedCookingModes lists the cooking modes this device supports.
	SupportedCookingModes() ([]CookingMode, error)

	// FoodPresets lists presets for certain types of food.
	FoodPresets() ([]FoodPreset, error)

	// CurrentCookingMode returns the mode currently set on the device.
	// CookingModeNone if no mode is selected.
	CurrentCookingMode() (CookingMode, error)

	// CurrentFoodPreset returns the food currently cooking, or empty if
	// none.
	CurrentFoodPreset() (string, error)

	// CurrentFoodQuantity returns the amount of food cooking, if a
	// quantity was specified. nil if nothing is cooking or the preset has
	// no quantity.
	CurrentFoodQuantity() (*int, error)

	// CurrentFoodUnit returns the unit associated with the current food
	// quantity, or empty if none.
	CurrentFoodUnit() (SizeUnit, error)

	// StartCooking starts cooking with the provided config.
	StartCooking(config CookingConfig) error

	// StopCooking stops the current cooking mode.
	StopCooking() error
}
