package fulfillment

import (
	"encoding/json"
	"fmt"
)

// Intent identifies the kind of fulfillment input.
type Intent string

const (
	IntentSync    Intent = "action.devices.SYNC"
	IntentQuery   Intent = "action.devices.QUERY"
	IntentExecute Intent = "action.devices.EXECUTE"
)

// IsValid returns true for a known intent.
func (i Intent) IsValid() bool {
	switch i {
	case IntentSync, IntentQuery, IntentExecute:
		return true
	}
	return false
}

// Request is the top-level fulfillment request envelope.
type Request struct {
	RequestID string  `json:"requestId"`
	Inputs    []Input `json:"inputs"`
}

// Input is one intent within a request. Exactly one payload field is
// populated, matching the intent. SYNC carries no payload.
type Input struct {
	Intent  Intent
	Query   *QueryRequest
	Execute *ExecuteRequest
}

// UnmarshalJSON decodes the {"intent": ..., "payload": ...} form,
// selecting the payload type from the intent.
func (in *Input) UnmarshalJSON(data []byte) error {
	var raw struct {
		Intent  Intent          `json:"intent"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*in = Input{Intent: raw.Intent}
	switch raw.Intent {
	case IntentSync:
		return nil
	case IntentQuery:
		in.Query = &QueryRequest{}
		if err := json.Unmarshal(raw.Payload, in.Query); err != nil {
			return fmt.Errorf("failed to decode query payload: %w", err)
		}
		return nil
	case IntentExecute:
		in.Execute = &ExecuteRequest{}
		if err := json.Unmarshal(raw.Payload, in.Execute); err != nil {
			return fmt.Errorf("failed to decode execute payload: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown intent: %q", raw.Intent)
	}
}

// MarshalJSON encodes the input back into its tagged form.
func (in Input) MarshalJSON() ([]byte, error) {
	raw := struct {
		Intent  Intent `json:"intent"`
		Payload any    `json:"payload,omitempty"`
	}{Intent: in.Intent}

	switch in.Intent {
	case IntentQuery:
		raw.Payload = in.Query
	case IntentExecute:
		raw.Payload = in.Execute
	}
	return json.Marshal(raw)
}

// DeviceRef identifies a device within a request payload.
type DeviceRef struct {
	ID string `json:"id"`
}

// QueryRequest is the QUERY intent payload: the devices to report on.
type QueryRequest struct {
	Devices []DeviceRef `json:"devices"`
}

// ExecuteRequest is the EXECUTE intent payload.
type ExecuteRequest struct {
	Commands []CommandGroup `json:"commands"`
}

// CommandGroup pairs target devices with the executions to run on
// each of them.
type CommandGroup struct {
	Devices   []DeviceRef `json:"devices"`
	Execution []Execution `json:"execution"`
}

// DecodeRequest decodes a fulfillment request from JSON bytes.
func DecodeRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	return &req, nil
}
