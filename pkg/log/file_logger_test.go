package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
)

func intentEvent(requestID string) Event {
	return Event{
		Timestamp: time.Now(),
		RequestID: requestID,
		Category:  CategoryIntent,
		Intent:    &IntentEvent{Intent: fulfillment.IntentSync},
	}
}

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(intentEvent("req-1"))
	logger.Log(Event{
		Timestamp: time.Now(),
		RequestID: "req-1",
		Category:  CategoryCommand,
		DeviceID:  "lamp-1",
		Command:   &CommandEvent{Command: fulfillment.CommandOnOff, Status: fulfillment.StatusSuccess},
	})
	if err := logger.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	first, err := reader.Next()
	if err != nil {
		t.Fatalf("reading first event failed: %v", err)
	}
	if first.Category != CategoryIntent {
		t.Errorf("got category %v, want %v", first.Category, CategoryIntent)
	}

	second, err := reader.Next()
	if err != nil {
		t.Fatalf("reading second event failed: %v", err)
	}
	if second.DeviceID != "lamp-1" {
		t.Errorf("got device id %q, want %q", second.DeviceID, "lamp-1")
	}

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flog")

	for _, id := range []string{"req-1", "req-2"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(intentEvent(id))
		logger.Close()
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); err != nil {
			break
		}
		count++
	}
	if count != 2 {
		t.Errorf("got %d events, want 2", count)
	}
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}

	// Logging after close must not panic or write.
	logger.Log(intentEvent("req-after-close"))
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				logger.Log(intentEvent("req-concurrent"))
			}
		}()
	}
	wg.Wait()
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); err != nil {
			break
		}
		count++
	}
	if count != 200 {
		t.Errorf("got %d events, want 200", count)
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(intentEvent("req-1"))
	logger.Log(Event{
		Timestamp: time.Now(),
		RequestID: "req-2",
		Category:  CategoryCommand,
		DeviceID:  "lamp-1",
		Command:   &CommandEvent{Command: fulfillment.CommandOnOff, Status: fulfillment.StatusSuccess},
	})
	logger.Log(intentEvent("req-3"))
	logger.Close()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "by category",
			filter: Filter{Category: ptrCategory(CategoryIntent)},
			want:   []string{"req-1", "req-3"},
		},
		{
			name:   "by request id",
			filter: Filter{RequestID: "req-2"},
			want:   []string{"req-2"},
		},
		{
			name:   "by device id",
			filter: Filter{DeviceID: "lamp-1"},
			want:   []string{"req-2"},
		},
		{
			name:   "no match",
			filter: Filter{RequestID: "req-unknown"},
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tc.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			var got []string
			for {
				event, err := reader.Next()
				if err != nil {
					break
				}
				got = append(got, event.RequestID)
			}

			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func ptrCategory(c Category) *Category {
	return &c
}
