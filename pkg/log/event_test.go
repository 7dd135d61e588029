package log

import (
	"testing"
	"time"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryIntent, "INTENT"},
		{CategoryCommand, "COMMAND"},
		{CategoryError, "ERROR"},
		{Category(42), "UNKNOWN"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.category.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEventRoundTrip(t *testing.T) {
	processing := 125 * time.Millisecond
	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "intent event",
			event: Event{
				Timestamp:   time.Date(2025, 3, 1, 10, 0, 0, 12345, time.UTC),
				RequestID:   "req-1",
				Category:    CategoryIntent,
				AgentUserID: "agent-1",
				Intent: &IntentEvent{
					Intent:         fulfillment.IntentQuery,
					DeviceCount:    3,
					ProcessingTime: &processing,
				},
			},
		},
		{
			name: "command event",
			event: Event{
				Timestamp: time.Date(2025, 3, 1, 10, 0, 1, 0, time.UTC),
				RequestID: "req-2",
				Category:  CategoryCommand,
				DeviceID:  "lamp-1",
				Command: &CommandEvent{
					Command:   fulfillment.CommandOnOff,
					Status:    fulfillment.StatusError,
					ErrorCode: "deviceTurnedOff",
				},
			},
		},
		{
			name: "error event",
			event: Event{
				Timestamp: time.Date(2025, 3, 1, 10, 0, 2, 0, time.UTC),
				RequestID: "req-3",
				Category:  CategoryError,
				Error: &ErrorEventData{
					Message: "decode failed",
					Context: "HandleRequest",
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeEvent(tc.event)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			got, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if !got.Timestamp.Equal(tc.event.Timestamp) {
				t.Errorf("got timestamp %v, want %v", got.Timestamp, tc.event.Timestamp)
			}
			if got.RequestID != tc.event.RequestID {
				t.Errorf("got request id %q, want %q", got.RequestID, tc.event.RequestID)
			}
			if got.Category != tc.event.Category {
				t.Errorf("got category %v, want %v", got.Category, tc.event.Category)
			}
			switch tc.event.Category {
			case CategoryIntent:
				if got.Intent == nil || got.Intent.Intent != tc.event.Intent.Intent {
					t.Errorf("intent payload not preserved: %+v", got.Intent)
				}
				if got.Intent.ProcessingTime == nil || *got.Intent.ProcessingTime != processing {
					t.Errorf("processing time not preserved: %v", got.Intent.ProcessingTime)
				}
			case CategoryCommand:
				if got.Command == nil || got.Command.Command != tc.event.Command.Command {
					t.Errorf("command payload not preserved: %+v", got.Command)
				}
				if got.Command.ErrorCode != tc.event.Command.ErrorCode {
					t.Errorf("got error code %q, want %q", got.Command.ErrorCode, tc.event.Command.ErrorCode)
				}
			case CategoryError:
				if got.Error == nil || got.Error.Message != tc.event.Error.Message {
					t.Errorf("error payload not preserved: %+v", got.Error)
				}
			}
		})
	}
}
