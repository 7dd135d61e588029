package examples

import (
	"sync"

	"github.com/smarthome-protocol/smarthome-go/pkg/device"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// LampConfig configures a simulated lamp.
type LampConfig struct {
	ID           string
	Name         string
	Room         string
	Manufacturer string
	Model        string
}

// Lamp is a simulated dimmable light with on/off and brightness.
type Lamp struct {
	mu         sync.RWMutex
	config     LampConfig
	online     bool
	on         bool
	brightness int

	dev *device.Device
}

// NewLamp creates a simulated lamp. It starts online, off, at full
// brightness.
func NewLamp(config LampConfig) *Lamp {
	if config.Manufacturer == "" {
		config.Manufacturer = "Example Labs"
	}
	if config.Model == "" {
		config.Model = "Dimmable Light v2"
	}

	l := &Lamp{
		config:     config,
		online:     true,
		brightness: 100,
	}
	l.dev = device.New(config.ID, device.TypeLight, l)
	l.dev.SetOnOff(l)
	l.dev.SetBrightness(l)
	return l
}

// Device returns the registered device handle.
func (l *Lamp) Device() *device.Device {
	return l.dev
}

// SetOnline forces the lamp online or offline.
func (l *Lamp) SetOnline(online bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.online = online
}

func (l *Lamp) DeviceInfo() traits.DeviceInfo {
	return traits.DeviceInfo{
		Manufacturer: l.config.Manufacturer,
		Model:        l.config.Model,
		HwVersion:    "1.0",
		SwVersion:    "2.1.0",
	}
}

func (l *Lamp) DeviceName() traits.DeviceName {
	return traits.DeviceName{Name: l.config.Name}
}

func (l *Lamp) RoomHint() string { return l.config.Room }

func (l *Lamp) WillReportState() bool { return false }

func (l *Lamp) IsOnline() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.online
}

func (l *Lamp) CommandOnlyOnOff() (*bool, error) { return nil, nil }

func (l *Lamp) QueryOnlyOnOff() (*bool, error) { return nil, nil }

func (l *Lamp) IsOn() (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.on, nil
}

func (l *Lamp) SetOn(on bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = on
	return nil
}

func (l *Lamp) CommandOnlyBrightness() (bool, error) { return false, nil }

func (l *Lamp) Brightness() (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.brightness, nil
}

func (l *Lamp) SetBrightnessAbsolute(brightness int) error {
	if brightness < 0 || brightness > 100 {
		return traits.ErrValueOutOfRange
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.brightness = brightness
	return nil
}

func (l *Lamp) SetBrightnessRelativePercent(percent int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.brightness = clampPercent(l.brightness + percent)
	return nil
}

func (l *Lamp) SetBrightnessRelativeWeight(weight int) error {
	// A weight step maps to 10 percent.
	l.mu.Lock()
	defer l.mu.Unlock()
	l.brightness = clampPercent(l.brightness + weight*10)
	return nil
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
