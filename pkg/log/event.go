package log

import (
	"time"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
)

// Event represents a protocol log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RequestID is the fulfillment request identifier the event belongs
	// to.
	RequestID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// AgentUserID identifies the agent handling the request.
	AgentUserID string `cbor:"4,keyasint,omitempty"`

	// DeviceID is the target device, for per-device events.
	DeviceID string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Intent  *IntentEvent    `cbor:"6,keyasint,omitempty"` // Handled intent
	Command *CommandEvent   `cbor:"7,keyasint,omitempty"` // Dispatched command
	Error   *ErrorEventData `cbor:"8,keyasint,omitempty"` // Errors
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryIntent indicates a handled intent (SYNC/QUERY/EXECUTE).
	CategoryIntent Category = 0
	// CategoryCommand indicates a command dispatched to one device.
	CategoryCommand Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryIntent:
		return "INTENT"
	case CategoryCommand:
		return "COMMAND"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// IntentEvent captures one handled intent.
type IntentEvent struct {
	// Intent is the handled intent identifier.
	Intent fulfillment.Intent `cbor:"1,keyasint"`

	// DeviceCount is the number of devices touched by the intent.
	DeviceCount int `cbor:"2,keyasint,omitempty"`

	// ProcessingTime is the duration from request receipt to response
	// assembly. Stored as nanoseconds.
	ProcessingTime *time.Duration `cbor:"3,keyasint,omitempty"`
}

// CommandEvent captures one command dispatched to one device.
type CommandEvent struct {
	// Command is the dispatched command identifier.
	Command fulfillment.CommandName `cbor:"1,keyasint"`

	// Status is the per-command result status.
	Status fulfillment.Status `cbor:"2,keyasint"`

	// ErrorCode is the protocol error code, for ERROR results.
	ErrorCode string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors during request handling.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
