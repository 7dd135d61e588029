package fulfillment

import (
	"encoding/json"
	"fmt"
)

// Status reports the outcome of a QUERY device state or an EXECUTE
// command. PENDING is only valid for EXECUTE.
type Status string

const (
	StatusSuccess    Status = "SUCCESS"
	StatusPending    Status = "PENDING"
	StatusOffline    Status = "OFFLINE"
	StatusExceptions Status = "EXCEPTIONS"
	StatusError      Status = "ERROR"
)

// Response is the top-level fulfillment response envelope. Payload is
// one of *SyncPayload, *QueryPayload or *ExecutePayload.
type Response struct {
	RequestID string `json:"requestId"`
	Payload   any    `json:"payload"`
}

// EncodeResponse encodes a fulfillment response to JSON bytes.
func EncodeResponse(resp *Response) ([]byte, error) {
	if resp.Payload == nil {
		return nil, fmt.Errorf("response has no payload")
	}
	return json.Marshal(resp)
}
