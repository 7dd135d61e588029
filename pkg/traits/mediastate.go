package traits

// ActivityState indicates whether the user is actively interacting with a
// media device.
type ActivityState string

const (
	ActivityInactive ActivityState = "INACTIVE"
	ActivityStandby  ActivityState = "STANDBY"
	ActivityActive   ActivityState = "ACTIVE"
)

// PlaybackState is the current media playback state.
type PlaybackState string

const (
	PlaybackPaused         PlaybackState = "PAUSED"
	PlaybackPlaying        PlaybackState = "PLAYING"
	PlaybackFastForwarding PlaybackState = "FAST_FORWARDING"
	PlaybackRewinding      PlaybackState = "REWINDING"
	PlaybackBuffering      PlaybackState = "BUFFERING"
	PlaybackStopped        PlaybackState = "STOPPED"
)

// MediaState is for devices that are able to report media states.
type MediaState interface {
	// SupportActivityState reports whether the device can report its
	// activity state. nil means unspecified.
	SupportActivityState() (*bool, error)

	// SupportPlaybackState reports whether the device can report its
	// playback state. nil means unspecified.
	SupportPlaybackState() (*bool, error)

	// CurrentActivityState indicates whether the device is active and the
	// user is interacting with it. Only called when SupportActivityState
	// reports true.
	CurrentActivityState() (*ActivityState, error)

	// CurrentPlaybackState indicates the state of media playback. Only
	// called when SupportPlaybackState reports true.
	CurrentPlaybackState() (*PlaybackState, error)
}
