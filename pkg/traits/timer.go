package traits

// Timer controls a built-in timer on devices such as sprinkler controllers
// and smart light switches: starting a new timer, pausing and canceling a
// running one, and asking how much time remains.
type Timer interface {
	// MaxTimerLimitSec is the longest timer setting available on the
	// device, in seconds.
	MaxTimerLimitSec() (int, error)

	// CommandOnlyTimer indicates one-way (true) or two-way (false)
	// communication. nil means unspecified (default false).
	CommandOnlyTimer() (*bool, error)

	// TimerRemainingSec is the current time remaining in seconds, within
	// [0, maxTimerLimitSec]. nil or -1 means no timer is running.
	TimerRemainingSec() (*int, error)

	// IsTimerPaused is true if an active timer exists but is currently
	// paused. nil means unspecified.
	IsTimerPaused() (*bool, error)

	// StartTimer starts a new timer with a duration within
	// [1, maxTimerLimitSec] seconds.
	StartTimer(seconds int) error

	// AdjustTimer adds a positive or negative adjustment within
	// [-maxTimerLimitSec, maxTimerLimitSec] seconds to the timer.
	AdjustTimer(seconds int) error

	// PauseTimer pauses the timer.
	PauseTimer() error

	// ResumeTimer resumes the timer.
	ResumeTimer() error

	// CancelTimer cancels the timer.
	CancelTimer() error
}
