// Command fulfillment-server is a demo webhook server backed by
// simulated devices.
//
// It loads a YAML configuration, builds the configured devices, and
// serves fulfillment requests over HTTP with bearer-token
// authentication. Intent traffic is logged to the console and,
// optionally, to a binary log file readable with pkg/log.Reader. When
// discovery is enabled the agent is advertised over mDNS for local
// execution paths.
//
// Usage:
//
//	fulfillment-server -config config.yaml
//
// Example configuration:
//
//	listen_address: ":8080"
//	agent_user_id: "agent-user-1234"
//	token_hashes:
//	  - "$2a$10$N9qo8uLOickgx2ZMRZoMye..."
//	log_file: "traffic.flog"
//	discovery:
//	  enabled: true
//	devices:
//	  - id: lamp-1
//	    kind: lamp
//	    name: Desk Lamp
//	    room: office
//	  - id: lock-1
//	    kind: lock
//	    name: Front Door
package main

import (
	"context"
	"flag"
	"io"
	stdlog "log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/smarthome-protocol/smarthome-go/pkg/device"
	"github.com/smarthome-protocol/smarthome-go/pkg/discovery"
	"github.com/smarthome-protocol/smarthome-go/pkg/examples"
	"github.com/smarthome-protocol/smarthome-go/pkg/log"
	"github.com/smarthome-protocol/smarthome-go/pkg/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Configuration file path")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	logger, closeLogger, err := buildLogger(cfg)
	if err != nil {
		stdlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLogger()

	svc := service.New(cfg.AgentUserID, service.WithLogger(logger))
	for _, entry := range cfg.Devices {
		svc.AddDevice(buildDevice(entry))
	}
	slog.Info("service ready",
		"agent_user_id", cfg.AgentUserID,
		"session_id", svc.SessionID(),
		"devices", len(cfg.Devices))

	if cfg.Discovery.Enabled {
		stop, err := startAdvertising(cfg)
		if err != nil {
			slog.Warn("mDNS advertising failed", "error", err)
		} else {
			defer stop()
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /fulfillment", requireAuth(cfg.TokenHashes, handleFulfillment(svc)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "address", cfg.ListenAddress)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		stdlog.Fatalf("Server failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// buildLogger assembles the protocol event logger: console always,
// plus the binary file log when configured.
func buildLogger(cfg *Config) (log.Logger, func(), error) {
	console := log.NewSlogAdapter(slog.Default())
	if cfg.LogFile == "" {
		return console, func() {}, nil
	}

	fileLogger, err := log.NewFileLogger(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := fileLogger.Close(); err != nil {
			slog.Error("closing log file failed", "error", err)
		}
	}
	return log.NewMultiLogger(console, fileLogger), closer, nil
}

func buildDevice(entry DeviceEntry) *device.Device {
	switch entry.Kind {
	case DeviceKindLock:
		return examples.NewLock(examples.LockConfig{
			ID: entry.ID, Name: entry.Name, Room: entry.Room,
		}).Device()
	case DeviceKindThermostat:
		return examples.NewThermostat(examples.ThermostatConfig{
			ID: entry.ID, Name: entry.Name, Room: entry.Room,
		}).Device()
	default:
		return examples.NewLamp(examples.LampConfig{
			ID: entry.ID, Name: entry.Name, Room: entry.Room,
		}).Device()
	}
}

// handleFulfillment serves the fulfillment webhook.
func handleFulfillment(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
			return
		}

		resp, err := svc.HandleJSON(body)
		if err != nil {
			slog.Warn("bad fulfillment request", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(resp)
	}
}

// listenPort extracts the port from a listen address like ":8080" or
// "0.0.0.0:8080". Zero falls back to the discovery default.
func listenPort(addr string) uint16 {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return 0
	}
	return uint16(port)
}

// startAdvertising publishes the agent over mDNS and returns a stop
// function.
func startAdvertising(cfg *Config) (func(), error) {
	adv, err := discovery.NewAdvertiser(discovery.AdvertiserConfig{
		Interface: cfg.Discovery.Interface,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(cfg.Devices))
	for _, entry := range cfg.Devices {
		ids = append(ids, entry.ID)
	}

	info := &discovery.AgentInfo{
		AgentUserID:  cfg.AgentUserID,
		InstanceName: cfg.Discovery.InstanceName,
		Port:         listenPort(cfg.ListenAddress),
		DeviceIDs:    ids,
	}
	if err := adv.Advertise(context.Background(), info); err != nil {
		return nil, err
	}
	slog.Info("advertising", "instance", discovery.InstanceName(info))

	return func() {
		if err := adv.Stop(); err != nil {
			slog.Error("stopping advertiser failed", "error", err)
		}
	}, nil
}
