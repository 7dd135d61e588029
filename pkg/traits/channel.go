package traits

// AvailableChannel describes one media channel the user can select.
type AvailableChannel struct {
	// Key uniquely identifies the channel. Not exposed to users.
	Key string `json:"key"`
	// Names are the user-visible names for the channel.
	Names []string `json:"names"`
	// Number is an optional numeric identifier for the channel.
	Number string `json:"number,omitempty"`
}

// Channel belongs to devices that support TV channels. Keep the available
// channel list small, to 30 channels or less, for low query latency.
type Channel interface {
	// AvailableChannels lists the channels selectable on this device.
	AvailableChannels() ([]AvailableChannel, error)

	// CommandOnlyChannels indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyChannels() (*bool, error)

	// SelectChannel sets the current channel by identifier. name and
	// number are optional.
	SelectChannel(code, name, number string) error

	// SelectChannelByNumber sets the current channel by channel number.
	SelectChannelByNumber(number string) error

	// SelectChannelRelative adjusts the current channel by a relative
	// amount.
	SelectChannelRelative(change int) error

	// ReturnToLastChannel returns to the previous channel.
	ReturnToLastChannel() error
}
