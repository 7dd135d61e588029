package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see intent traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("request_id", event.RequestID),
		slog.String("category", event.Category.String()),
	}

	// Add optional identifiers
	if event.AgentUserID != "" {
		attrs = append(attrs, slog.String("agent_user_id", event.AgentUserID))
	}
	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}

	// Add type-specific attributes
	switch {
	case event.Intent != nil:
		attrs = append(attrs,
			slog.String("intent", string(event.Intent.Intent)),
			slog.Int("device_count", event.Intent.DeviceCount),
		)
		if event.Intent.ProcessingTime != nil {
			attrs = append(attrs, slog.Duration("processing_time", *event.Intent.ProcessingTime))
		}
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("command", string(event.Command.Command)),
			slog.String("status", string(event.Command.Status)),
		)
		if event.Command.ErrorCode != "" {
			attrs = append(attrs, slog.String("error_code", event.Command.ErrorCode))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "fulfillment", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
