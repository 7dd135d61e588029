package traits

// NetworkSettings holds the SSID of a network.
type NetworkSettings struct {
	SSID string `json:"ssid"`
}

// SpeedTestStatus indicates whether a network speed test succeeded.
type SpeedTestStatus string

const (
	SpeedTestSuccess SpeedTestStatus = "SUCCESS"
	SpeedTestFailure SpeedTestStatus = "FAILURE"
)

// DownloadSpeedTestResult is the result of the most recent download speed
// test.
type DownloadSpeedTestResult struct {
	// DownloadSpeedMbps is the download speed in megabits per second.
	DownloadSpeedMbps float64 `json:"downloadSpeedMbps"`
	// UnixTimestampSec is when the test was run.
	UnixTimestampSec int64 `json:"unixTimestampSec"`
	// Status indicates whether the test succeeded.
	Status SpeedTestStatus `json:"status"`
}

// UploadSpeedTestResult is the result of the most recent upload speed test.
type UploadSpeedTestResult struct {
	// UploadSpeedMbps is the upload speed in megabits per second.
	UploadSpeedMbps float64 `json:"uploadSpeedMbps"`
	// UnixTimestampSec is when the test was run.
	UnixTimestampSec int64 `json:"unixTimestampSec"`
	// Status indicates whether the test succeeded.
	Status SpeedTestStatus `json:"status"`
}

// NetworkProfileState is the state of one network profile.
type NetworkProfileState struct {
	// Enabled is the current enabled/disabled state of the profile.
	Enabled bool `json:"enabled"`
}

// NetworkControl belongs to devices that report network data and perform
// network operations, such as routers.
//
// ErrNetworkProfileNotRecognized and ErrNetworkSpeedTestInProgress report
// profile and speed test failures.
type NetworkControl interface {
	// SupportsEnablingGuestNetwork is true if the guest network can be
	// enabled. nil means unspecified (default false).
	SupportsEnablingGuestNetwork() (*bool, error)

	// SupportsDisablingGuestNetwork is true if the guest network can be
	// disabled. nil means unspecified (default false).
	SupportsDisablingGuestNetwork() (*bool, error)

	// SupportsGettingGuestNetworkPassword is true if the guest network
	// password can be retrieved via the GetGuestNetworkPassword command.
	// nil means unspecified (default false).
	SupportsGettingGuestNetworkPassword() (*bool, error)

	// SupportsEnablingNetworkProfile is true if network profiles can be
	// enabled. nil means unspecified (default false).
	SupportsEnablingNetworkProfile() (*bool, error)

	// SupportsDisablingNetworkProfile is true if network profiles can be
	// disabled. nil means unspecified (default false).
	SupportsDisablingNetworkProfile() (*bool, error)

	// SupportsNetworkDownloadSpeedTest is true if a download speed test
	// can be run. nil means unspecified (default false).
	SupportsNetworkDownloadSpeedTest() (*bool, error)

	// SupportsNetworkUploadSpeedTest is true if an upload speed test can
	// be run. nil means unspecified (default false).
	SupportsNetworkUploadSpeedTest() (*bool, error)

	// NetworkProfiles lists the supported network profile names. nil means
	// no profiles.
	NetworkProfiles() ([]string, error)

	// IsNetworkEnabled reports whether the main network is enabled.
	IsNetworkEnabled() (bool, error)

	// NetworkSettings returns the SSID of the main network.
	NetworkSettings() (NetworkSettings, error)

	// IsGuestNetworkEnabled reports whether the guest network is enabled.
	IsGuestNetworkEnabled() (bool, error)

	// GuestNetworkSettings returns the SSID of the guest network.
	GuestNetworkSettings() (NetworkSettings, error)

	// NumConnectedDevices returns the number of devices connected to the
	// network.
	NumConnectedDevices() (int, error)

	// NetworkUsageMB returns the network usage in megabytes within the
	// current billing period.
	NetworkUsageMB() (float64, error)

	// NetworkUsageLimitMB returns the network usage limit in megabytes
	// within the current billing period.
	NetworkUsageLimitMB() (float64, error)

	// IsNetworkUsageUnlimited reports whether the network usage is
	// unlimited. The usage limit is ignored when true.
	IsNetworkUsageUnlimited() (bool, error)

	// LastNetworkDownloadSpeedTest returns the most recent download speed
	// test result.
	LastNetworkDownloadSpeedTest() (DownloadSpeedTestResult, error)

	// LastNetworkUploadSpeedTest returns the most recent upload speed test
	// result.
	LastNetworkUploadSpeedTest() (UploadSpeedTestResult, error)

	// IsNetworkSpeedTestInProgress reports whether a speed test is
	// running. nil means unspecified (default false).
	IsNetworkSpeedTestInProgress() (*bool, error)

	// NetworkProfilesState maps each profile name from the networkProfiles
	// attribute to its state.
	NetworkProfilesState() (map[string]NetworkProfileState, error)

	// SetGuestNetworkEnabled enables or disables the guest network. Only
	// called when both SupportsEnablingGuestNetwork and
	// SupportsDisablingGuestNetwork report true.
	SetGuestNetworkEnabled(enable bool) error

	// SetNetworkProfileEnabled enables or disables a network profile. Only
	// called when both SupportsEnablingNetworkProfile and
	// SupportsDisablingNetworkProfile report true.
	SetNetworkProfileEnabled(profile string, enable bool) error

	// GuestNetworkPassword returns the guest network password. Only called
	// when SupportsGettingGuestNetworkPassword reports true.
	GuestNetworkPassword() (string, error)

	// TestNetworkSpeed tests the download and/or upload speed.
	TestNetworkSpeed(download, upload bool) error
}
