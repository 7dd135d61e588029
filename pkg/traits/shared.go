package traits

// Language is a language code used for name synonyms.
type Language string

// Languages supported for synonym lists.
const (
	LanguageDanish     Language = "da"
	LanguageDutch      Language = "nl"
	LanguageEnglish    Language = "en"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguageHindi      Language = "hi"
	LanguageIndonesian Language = "id"
	LanguageItalian    Language = "it"
	LanguageJapanese   Language = "ja"
	LanguageKorean     Language = "ko"
	LanguageNorwegian  Language = "no"
	LanguagePortuguese Language = "pt-BR"
	LanguageSpanish    Language = "es"
	LanguageSwedish    Language = "sv"
	LanguageThai       Language = "th"
	LanguageChinese    Language = "zh-TW"
)

// SizeUnit is a unit of measure for dispensed or cooked amounts.
type SizeUnit string

const (
	UnitUnknown     SizeUnit = "UNKNOWN_UNITS"
	UnitNone        SizeUnit = "NO_UNITS"
	UnitCentimeters SizeUnit = "CENTIMETERS"
	UnitCups        SizeUnit = "CUPS"
	UnitDeciliters  SizeUnit = "DECILITERS"
	UnitFeet        SizeUnit = "FEET"
	UnitFluidOunces SizeUnit = "FLUID_OUNCES"
	UnitGallons     SizeUnit = "GALLONS"
	UnitGrams       SizeUnit = "GRAMS"
	UnitInches      SizeUnit = "INCHES"
	UnitKilograms   SizeUnit = "KILOGRAMS"
	UnitLiters      SizeUnit = "LITERS"
	UnitMeters      SizeUnit = "METERS"
	UnitMilligrams  SizeUnit = "MILLIGRAMS"
	UnitMilliliters SizeUnit = "MILLILITERS"
	UnitMillimeters SizeUnit = "MILLIMETERS"
	UnitOunces      SizeUnit = "OUNCES"
	UnitPinch       SizeUnit = "PINCH"
	UnitPints       SizeUnit = "PINTS"
	UnitPortion     SizeUnit = "PORTION"
	UnitPounds      SizeUnit = "POUNDS"
	UnitQuarts      SizeUnit = "QUARTS"
	UnitTablespoons SizeUnit = "TABLESPOONS"
	UnitTeaspoons   SizeUnit = "TEASPOONS"
)

// TemperatureUnit is the unit used in responses to the user.
type TemperatureUnit string

const (
	TemperatureUnitCelsius    TemperatureUnit = "C"
	TemperatureUnitFahrenheit TemperatureUnit = "F"
)

// TemperatureRange is a supported temperature range in degrees Celsius.
type TemperatureRange struct {
	MinThresholdCelsius float64 `json:"minThresholdCelsius"`
	MaxThresholdCelsius float64 `json:"maxThresholdCelsius"`
}

// Synonym lists the names for a preset in one language.
type Synonym struct {
	// Synonym should include both singular and plural forms where
	// applicable.
	Synonym []string `json:"synonym"`
	Lang    Language `json:"lang"`
}
