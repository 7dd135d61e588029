package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
)

// recordingLogger collects events for assertions.
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestNoopLogger(t *testing.T) {
	// Must be usable as a zero value and not panic.
	var logger NoopLogger
	logger.Log(intentEvent("req-1"))
}

func TestMultiLoggerFansOut(t *testing.T) {
	first := &recordingLogger{}
	second := &recordingLogger{}
	multi := NewMultiLogger(first, second)

	multi.Log(intentEvent("req-1"))
	multi.Log(intentEvent("req-2"))

	if len(first.events) != 2 || len(second.events) != 2 {
		t.Errorf("got %d/%d events, want 2/2", len(first.events), len(second.events))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(intentEvent("req-1"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{
		Timestamp:   time.Now(),
		RequestID:   "req-1",
		Category:    CategoryCommand,
		AgentUserID: "agent-1",
		DeviceID:    "lamp-1",
		Command: &CommandEvent{
			Command:   fulfillment.CommandOnOff,
			Status:    fulfillment.StatusError,
			ErrorCode: "deviceTurnedOff",
		},
	})

	out := buf.String()
	for _, want := range []string{
		"request_id=req-1",
		"category=COMMAND",
		"device_id=lamp-1",
		"command=action.devices.commands.OnOff",
		"error_code=deviceTurnedOff",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
