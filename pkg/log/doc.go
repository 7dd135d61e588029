// Package log provides structured protocol logging for fulfillment
// traffic.
//
// This package defines the Logger interface and Event types for capturing
// intent-level events. It is separate from operational logging (slog) -
// protocol capture provides a complete machine-readable trace of handled
// intents and dispatched commands for debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/fulfillment/agent.flog")
//
//	// Both: combine with NewMultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// One IntentEvent is captured per handled intent and one CommandEvent per
// command dispatched to a device. Errors have a dedicated event type.
//
// # File Format
//
// Log files use CBOR encoding with .flog extension. The Reader type
// streams events back with optional filtering.
package log
