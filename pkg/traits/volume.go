package traits

// Volume belongs to devices that can change volume, including mute and
// unmute. Mute takes the volume to 0 while remembering the previous level,
// so that unmute restores it: if volume is 5 and the user mutes, volume
// stays 5 with isMuted true.
type Volume interface {
	// VolumeMaxLevel is the maximum volume level, assuming a baseline of 0
	// (mute). Adverbial commands are adjusted accordingly.
	VolumeMaxLevel() (int, error)

	// CanMuteAndUnmute reports whether the device supports mute and
	// unmute.
	CanMuteAndUnmute() (bool, error)

	// VolumeDefaultPercentage is the default volume as a percentage from 0
	// to 100. nil means the default of 40.
	VolumeDefaultPercentage() (*int, error)

	// LevelStepSize is the default step size for relative volume queries.
	// nil means the default of 1.
	LevelStepSize() (*int, error)

	// CommandOnlyVolume indicates one-way (true) or two-way (false)
	// communication. Devices like traditional infrared remotes that cannot
	// confirm the new state set this to true. nil means unspecified
	// (default false).
	CommandOnlyVolume() (*bool, error)

	// CurrentVolume is the current volume percentage, between 0 and
	// volumeMaxLevel. Must be reported unless the device is command only.
	CurrentVolume() (*int, error)

	// IsMuted is true if the device is muted. The device still reports
	// CurrentVolume for the remembered level. Must be reported when
	// CanMuteAndUnmute is true.
	IsMuted() (*bool, error)

	// Mute mutes (true) or unmutes (false) the device.
	Mute(mute bool) error

	// SetVolume sets the volume to the requested level, from 0 to
	// volumeMaxLevel.
	SetVolume(volumeLevel int) error

	// SetVolumeRelative moves the volume up or down n steps, scaled by the
	// platform to the available steps.
	SetVolumeRelative(relativeSteps int) error
}
