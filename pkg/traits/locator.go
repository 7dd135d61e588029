package traits

// Locator is for devices that can be "found", such as phones, robots,
// drones, and tag products that attach to other devices.
type Locator interface {
	// Locate generates a local alert on the device. silence, when true,
	// silences any in-progress alarms on devices with audible alerts. lang
	// is the language of the query, for localized location strings.
	Locate(silence bool, lang Language) error
}
