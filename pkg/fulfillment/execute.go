package fulfillment

import (
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// ExecutePayload is the EXECUTE response payload.
type ExecutePayload struct {
	Commands []ExecuteResult `json:"commands"`
}

// ExecuteResult reports the outcome of the executions run against the
// listed device ids. States is set on SUCCESS, ErrorCode on ERROR,
// DebugString on OFFLINE.
type ExecuteResult struct {
	IDs         []string       `json:"ids"`
	Status      Status         `json:"status"`
	States      *CommandStates `json:"states,omitempty"`
	ErrorCode   string         `json:"errorCode,omitempty"`
	DebugString string         `json:"debugString,omitempty"`
}

// CommandStates carries the state read back after a successful
// command.
type CommandStates struct {
	Online bool  `json:"online"`
	Lock   *bool `json:"lock,omitempty"`

	GuestNetworkPassword string `json:"guestNetworkPassword,omitempty"`

	// Camera stream results, set by GetCameraStream.
	CameraStreamAuthToken     string                      `json:"cameraStreamAuthToken,omitempty"`
	CameraStreamProtocol      traits.CameraStreamProtocol `json:"cameraStreamProtocol,omitempty"`
	CameraStreamSignalingURL  string                      `json:"cameraStreamSignalingUrl,omitempty"`
	CameraStreamOffer         string                      `json:"cameraStreamOffer,omitempty"`
	CameraStreamICEServers    string                      `json:"cameraStreamIceServers,omitempty"`
	CameraStreamAccessURL     string                      `json:"cameraStreamAccessUrl,omitempty"`
	CameraStreamReceiverAppID string                      `json:"cameraStreamReceiverAppId,omitempty"`
}
