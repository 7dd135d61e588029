package traits

// CurrentRunCycle holds the synonyms for the current cycle in one language.
type CurrentRunCycle struct {
	// CurrentCycle is the cycle being performed.
	CurrentCycle string `json:"currentCycle"`
	// NextCycle is the next cycle to perform, if any.
	NextCycle string `json:"nextCycle,omitempty"`
	// Lang is the language code for the cycle names.
	Lang Language `json:"lang"`
}

// RunCycle represents any device with an ongoing operation of queryable
// duration, such as washing machines, dryers, and dishwashers.
type RunCycle interface {
	// CurrentRunCycle holds the synonyms for the current cycle in each
	// supported language.
	CurrentRunCycle() ([]CurrentRunCycle, error)

	// CurrentTotalRemainingTime is the time remaining on the operation, in
	// seconds.
	CurrentTotalRemainingTime() (int, error)

	// CurrentCycleRemainingTime is the time remaining on the current
	// cycle, in seconds.
	CurrentCycleRemainingTime() (int, error)
}
