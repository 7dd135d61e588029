package traits

// AvailableApplication is one application users of the device can interact
// with.
type AvailableApplication struct {
	// Key uniquely identifies the application. Not exposed to users.
	Key string `json:"key"`
	// Names holds the application name and its synonyms per language.
	Names []ApplicationName `json:"names"`
}

// ApplicationName lists the synonyms for an application in one language. The
// first synonym is used in responses.
type ApplicationName struct {
	NameSynonym []string `json:"name_synonym"`
	Lang        Language `json:"lang"`
}

// AppSelector belongs to devices that support media applications, typically
// from third parties.
type AppSelector interface {
	// AvailableApplications lists the applications the device supports.
	AvailableApplications() ([]AvailableApplication, error)

	// CurrentApplication returns the key of the application active in the
	// foreground.
	CurrentApplication() (string, error)

	// AppInstallByKey installs the application with the given key.
	AppInstallByKey(key string) error

	// AppInstallByName installs the application with the given name.
	AppInstallByName(name string) error

	// AppSearchByKey searches for the application with the given key.
	AppSearchByKey(key string) error

	// AppSearchByName searches for the application with the given name.
	AppSearchByName(name string) error

	// AppSelectByKey brings the application with the given key to the
	// foreground.
	AppSelectByKey(key string) error

	// AppSelectByName brings the application with the given name to the
	// foreground.
	AppSelectByName(name string) error
}
