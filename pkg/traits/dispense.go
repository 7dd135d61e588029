package traits

// DispenseItem describes one item the device can dispense.
type DispenseItem struct {
	// ItemName is the internal name for the item. Shared across all
	// languages.
	ItemName string `json:"item_name"`
	// ItemNameSynonyms holds the item name synonyms per language.
	ItemNameSynonyms []Synonym `json:"item_name_synonyms"`
	// SupportedUnits is the set of units the device supports for the item.
	SupportedUnits []SizeUnit `json:"supported_units"`
	// DefaultPortion is the typical amount dispensed.
	DefaultPortion DispenseAmount `json:"default_portion"`
}

// DispenseAmount is an amount and its unit.
type DispenseAmount struct {
	Amount int      `json:"amount"`
	Unit   SizeUnit `json:"unit"`
}

// DispensePreset is a named dispensing preset.
type DispensePreset struct {
	// PresetName is the internal name for the preset. Shared across all
	// languages.
	PresetName string `json:"preset_name"`
	// PresetNameSynonyms holds the preset name synonyms per language.
	PresetNameSynonyms []Synonym `json:"preset_name_synonyms"`
}

// DispenseItemState is the current state of one dispensable item.
type DispenseItemState struct {
	// ItemName matches the item_name attribute.
	ItemName string `json:"itemName"`
	// AmountRemaining is the amount left in the device. While dispensing,
	// this reports what the amount will be once dispensing finishes.
	AmountRemaining DispenseAmount `json:"amountRemaining"`
	// AmountLastDispensed is the amount most recently dispensed.
	AmountLastDispensed DispenseAmount `json:"amountLastDispensed"`
	// IsCurrentlyDispensing reports whether the item is being dispensed.
	IsCurrentlyDispensing bool `json:"isCurrentlyDispensing"`
}

// Dispense belongs to devices that dispense a specified amount of one or
// more physical items, such as treat dispensers, faucets and pet feeders.
//
// Domain failures are reported with the Dispense error codes, for example
// ErrDispenseAmountRemainingExceeded or ErrDeviceClogged. The non-blocking
// conditions ExceptionAmountRemainingLow and ExceptionUserNeedsToWait use
// the same mechanism.
type Dispense interface {
	// SupportedDispenseItems lists the items the device can dispense.
	SupportedDispenseItems() ([]DispenseItem, error)

	// SupportedDispensePresets lists the presets supported by the device.
	SupportedDispensePresets() ([]DispensePreset, error)

	// DispenseItemsState returns the state of each dispensable item.
	DispenseItemsState() ([]DispenseItemState, error)

	// DispenseAmount dispenses the given amount of an item.
	DispenseAmount(item string, amount int, unit SizeUnit) error

	// DispensePreset dispenses according to a named preset.
	DispensePreset(preset string) error

	// DispenseDefault performs the default dispense action.
	DispenseDefault() error
}
