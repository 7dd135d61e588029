package traits

// CameraStreamProtocol is a supported stream media format.
type CameraStreamProtocol string

const (
	StreamHLS            CameraStreamProtocol = "hls"
	StreamDash           CameraStreamProtocol = "dash"
	StreamSmoothStream   CameraStreamProtocol = "smooth_stream"
	StreamProgressiveMP4 CameraStreamProtocol = "progressive_mp4"
	StreamWebRTC         CameraStreamProtocol = "webRTC"
)

// CameraStreamDescriptor is the result of a GetCameraStream command. Exactly
// one of WebRTC or Access should be set, matching the protocol.
type CameraStreamDescriptor struct {
	// AuthToken authorizes the receiver to access the stream. If the
	// device requires auth tokens and this is empty, the user's OAuth
	// credentials are used instead.
	AuthToken string
	// Protocol is the media format the stream uses. Must be one of the
	// protocols offered in the command's SupportedStreamProtocols.
	Protocol CameraStreamProtocol

	// WebRTC describes a webRTC stream.
	WebRTC *WebRTCStream
	// Access describes a non-webRTC stream.
	Access *AccessURLStream
}

// WebRTCStream carries the signaling endpoint for a webRTC camera stream.
type WebRTCStream struct {
	// SignalingURL is the endpoint for exchanging session descriptions.
	SignalingURL string
	// Offer is the offer session description protocol, if any.
	Offer string
	// ICEServers is an encoded JSON description of RTCIceServer entries.
	// Empty selects the platform default STUN servers.
	ICEServers string
}

// AccessURLStream carries the access URL for a non-webRTC camera stream.
type AccessURLStream struct {
	// AccessURL is the endpoint for retrieving the real-time stream.
	AccessURL string
	// ReceiverAppID is the Cast receiver to process the stream when
	// streaming to a Chromecast. Empty selects the default receiver.
	ReceiverAppID string
}

// CameraStream belongs to devices that can stream video feeds to third
// party screens, Chromecast-connected screens, or smartphones.
type CameraStream interface {
	// SupportedCameraStreamProtocols lists the supported media formats.
	SupportedCameraStreamProtocols() ([]CameraStreamProtocol, error)

	// NeedAuthToken reports whether an auth token will be provided for the
	// target surface to stream the camera feed.
	NeedAuthToken() (bool, error)

	// GetCameraStream requests a stream for the given destination.
	GetCameraStream(toChromecast bool, supportedProtocols []CameraStreamProtocol) (CameraStreamDescriptor, error)
}
