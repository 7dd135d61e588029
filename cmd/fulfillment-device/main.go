// Command fulfillment-device is an interactive console for exercising
// the fulfillment pipeline against simulated devices.
//
// It runs a local orchestrator with a lamp, a lock and a thermostat
// and lets you send SYNC, QUERY and EXECUTE requests from a prompt,
// toggle device state directly, and force devices offline to observe
// the error reporting paths. Responses are pretty-printed JSON, so the
// console doubles as a wire-format explorer.
//
// Usage:
//
//	fulfillment-device [-agent agent-user-id] [-log-file traffic.flog]
package main

import (
	"flag"
	stdlog "log"

	"github.com/smarthome-protocol/smarthome-go/pkg/examples"
	"github.com/smarthome-protocol/smarthome-go/pkg/log"
	"github.com/smarthome-protocol/smarthome-go/pkg/service"
)

func main() {
	agentUserID := flag.String("agent", "local-agent", "Agent user id for SYNC responses")
	logFile := flag.String("log-file", "", "Record intent traffic to this file")
	flag.Parse()

	var opts []service.Option
	if *logFile != "" {
		fileLogger, err := log.NewFileLogger(*logFile)
		if err != nil {
			stdlog.Fatalf("Failed to open log file: %v", err)
		}
		defer func() { _ = fileLogger.Close() }()
		opts = append(opts, service.WithLogger(fileLogger))
	}

	lamp := examples.NewLamp(examples.LampConfig{ID: "lamp-1", Name: "Desk Lamp", Room: "office"})
	lock := examples.NewLock(examples.LockConfig{ID: "lock-1", Name: "Front Door", Room: "hallway"})
	therm := examples.NewThermostat(examples.ThermostatConfig{ID: "thermostat-1", Name: "Hallway Thermostat", Room: "hallway"})

	svc := service.New(*agentUserID, opts...)
	svc.AddDevice(lamp.Device())
	svc.AddDevice(lock.Device())
	svc.AddDevice(therm.Device())

	r, err := newREPL(svc, map[string]onliner{
		"lamp-1":       lamp,
		"lock-1":       lock,
		"thermostat-1": therm,
	})
	if err != nil {
		stdlog.Fatalf("Failed to start console: %v", err)
	}
	r.run()
}
