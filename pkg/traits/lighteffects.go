package traits

// LightEffectType is a supported light effect.
type LightEffectType string

const (
	// EffectColorLoop loops through various colors randomly.
	EffectColorLoop LightEffectType = "colorLoop"
	// EffectSleep gradually lowers brightness over a period of time.
	EffectSleep LightEffectType = "sleep"
	// EffectWake gradually increases brightness over a period of time.
	EffectWake LightEffectType = "wake"
)

// LightEffects belongs to devices that support complex lighting commands to
// change state, such as looping through various colors.
type LightEffects interface {
	// DefaultColorLoopDuration is the default duration in seconds for the
	// ColorLoop command. nil means the default of 1800.
	DefaultColorLoopDuration() (*int, error)

	// DefaultSleepDuration is the default duration in seconds for the
	// Sleep command. nil means the default of 1800.
	DefaultSleepDuration() (*int, error)

	// DefaultWakeDuration is the default duration in seconds for the Wake
	// command. nil means the default of 1800.
	DefaultWakeDuration() (*int, error)

	// SupportedEffects lists the effects the device supports.
	SupportedEffects() ([]LightEffectType, error)

	// ActiveLightEffect returns the currently active effect, if any.
	ActiveLightEffect() (*LightEffectType, error)

	// LightEffectEndUnixTimestampSec returns the Unix timestamp when the
	// effect is expected to end, if it ends on its own.
	LightEffectEndUnixTimestampSec() (*int64, error)

	// ColorLoop cycles the device through a set of colors. duration is in
	// seconds, nil for the default.
	ColorLoop(duration *int) error

	// Sleep gradually lowers brightness. duration is in seconds, nil for
	// the default.
	Sleep(duration *int) error

	// Wake gradually increases brightness. duration is in seconds, nil for
	// the default.
	Wake(duration *int) error

	// StopEffect stops the current effect.
	StopEffect() error
}
