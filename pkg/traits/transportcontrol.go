package traits

// TransportControlCommand is one supported transport control operation.
type TransportControlCommand string

const (
	TransportCaptionControl TransportControlCommand = "CAPTION_CONTROL"
	TransportNext           TransportControlCommand = "NEXT"
	TransportPause          TransportControlCommand = "PAUSE"
	TransportPrevious       TransportControlCommand = "PREVIOUS"
	TransportResume         TransportControlCommand = "RESUME"
	TransportSeekRelative   TransportControlCommand = "SEEK_RELATIVE"
	TransportSeekAbsolute   TransportControlCommand = "SEEK_ABSOLUTE"
	TransportSetRepeat      TransportControlCommand = "SET_REPEAT"
	TransportShuffle        TransportControlCommand = "SHUFFLE"
	TransportStop           TransportControlCommand = "STOP"
)

// TransportControl is for devices that can control media playback, for
// example resuming music that is paused. Devices that report playback state
// should additionally use MediaState.
//
// Each method is only invoked when the corresponding command appears in
// SupportedControlCommands.
type TransportControl interface {
	// SupportedControlCommands lists the supported transport control
	// commands of this device.
	SupportedControlCommands() ([]TransportControlCommand, error)

	// MediaStop stops media playback.
	MediaStop() error

	// MediaNext skips to the next media item.
	MediaNext() error

	// MediaPrevious skips to the previous media item.
	MediaPrevious() error

	// MediaPause pauses media playback.
	MediaPause() error

	// MediaResume resumes media playback.
	MediaResume() error

	// MediaSeekRelative seeks forward (positive) or backward (negative) by
	// the given amount in milliseconds.
	MediaSeekRelative(relativePositionMs int) error

	// MediaSeekToPosition seeks to an absolute position in milliseconds.
	MediaSeekToPosition(absPositionMs int) error

	// MediaRepeatMode sets repeat playback mode. isSingle selects
	// single-item repeat over normal repeat.
	MediaRepeatMode(isOn, isSingle bool) error

	// MediaShuffle shuffles the current playlist.
	MediaShuffle() error

	// MediaClosedCaptioningOn turns captions on. ccLang is the language or
	// locale for closed captioning, userQueryLang that of the user's
	// query.
	MediaClosedCaptioningOn(ccLang, userQueryLang string) error

	// MediaClosedCaptioningOff turns captions off.
	MediaClosedCaptioningOff() error
}
