package traits

// AvailableInput is one audio or video feed of a device.
type AvailableInput struct {
	// Key uniquely identifies the input. Not exposed to users.
	Key string `json:"key"`
	// Names holds the input names per language.
	Names []InputName `json:"names"`
}

// InputName lists the user-friendly names for an input in one language. The
// first synonym is used in responses.
type InputName struct {
	Lang        Language `json:"lang"`
	NameSynonym []string `json:"name_synonym"`
}

// InputSelector is for devices that can change media inputs. Inputs can
// have dynamic names per device and may represent audio or video feeds,
// hardwired or networked.
//
// ErrUnsupportedInput reports selection of an input the device does not
// currently support.
type InputSelector interface {
	// AvailableInputs lists the input feeds. Feeds should be named and
	// reasonably persistent.
	AvailableInputs() ([]AvailableInput, error)

	// CommandOnlyInputSelector indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyInputSelector() (*bool, error)

	// OrderedInputs is true if the input list is ordered, which also
	// enables next/previous selection. nil means unspecified (default
	// false).
	OrderedInputs() (*bool, error)

	// CurrentInput returns the key of the input in use.
	CurrentInput() (string, error)

	// SetInput switches to the input with the given key.
	SetInput(input string) error

	// NextInput selects the next input. Only applicable when the inputs
	// are ordered.
	NextInput() error

	// PreviousInput selects the previous input. Only applicable when the
	// inputs are ordered.
	PreviousInput() error
}
