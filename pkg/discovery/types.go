package discovery

import "errors"

const (
	// ServiceType is the mDNS service type fulfillment agents register
	// under.
	ServiceType = "_smarthome-fulfillment._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// DefaultPort is used when AgentInfo leaves Port zero.
	DefaultPort = 8080

	// MaxInstanceNameLen is the DNS-SD instance name limit.
	MaxInstanceNameLen = 63
)

// TXT record keys.
const (
	// TXTKeyAgentUserID carries the agent user id ("aid").
	TXTKeyAgentUserID = "aid"

	// TXTKeyDeviceIDs carries the comma-separated device ids ("ids").
	TXTKeyDeviceIDs = "ids"

	// TXTKeyVersion carries the advertised protocol version ("ver").
	TXTKeyVersion = "ver"

	// TXTKeyDisplayName carries an optional human-readable name ("dn").
	TXTKeyDisplayName = "dn"
)

// ProtocolVersion is the version published in TXT records.
const ProtocolVersion = "1"

var (
	// ErrMissingRequired indicates a required TXT key is absent.
	ErrMissingRequired = errors.New("missing required TXT record")

	// ErrInvalidTXTRecord indicates a TXT value failed to parse.
	ErrInvalidTXTRecord = errors.New("invalid TXT record")

	// ErrInstanceNameTooLong indicates the instance name exceeds the
	// DNS-SD limit.
	ErrInstanceNameTooLong = errors.New("instance name too long")

	// ErrNotAdvertising is returned by Update and Stop when no service
	// is registered.
	ErrNotAdvertising = errors.New("not advertising")
)

// AgentInfo describes the advertised fulfillment agent.
type AgentInfo struct {
	// AgentUserID identifies the agent. Required.
	AgentUserID string

	// InstanceName overrides the mDNS instance name. Defaults to
	// "fulfillment-<AgentUserID>".
	InstanceName string

	// Port the agent's webhook listens on. Zero means DefaultPort.
	Port uint16

	// DeviceIDs are the ids of the devices the agent fulfills.
	DeviceIDs []string

	// DisplayName is an optional human-readable name.
	DisplayName string
}
