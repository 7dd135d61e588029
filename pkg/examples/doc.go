// Package examples provides ready-made simulated devices for demos
// and tests.
//
// Each example owns its state behind a mutex and exposes a Device()
// accessor returning the registered device handle:
//
//	lamp := examples.NewLamp(examples.LampConfig{ID: "lamp-1", Name: "Desk Lamp"})
//	svc.AddDevice(lamp.Device())
//
// The simulated devices support being forced offline (SetOnline) to
// exercise the OFFLINE reporting paths.
package examples
