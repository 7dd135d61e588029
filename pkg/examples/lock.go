package examples

import (
	"sync"

	"github.com/smarthome-protocol/smarthome-go/pkg/device"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// LockConfig configures a simulated lock.
type LockConfig struct {
	ID           string
	Name         string
	Room         string
	Manufacturer string
	Model        string
}

// Lock is a simulated deadbolt. Locking an already locked bolt (or
// unlocking an open one) reports the matching protocol error, and a
// jammed bolt refuses to move at all.
type Lock struct {
	mu     sync.RWMutex
	config LockConfig
	online bool
	locked bool
	jammed bool

	dev *device.Device
}

// NewLock creates a simulated lock. It starts online and unlocked.
func NewLock(config LockConfig) *Lock {
	if config.Manufacturer == "" {
		config.Manufacturer = "Example Labs"
	}
	if config.Model == "" {
		config.Model = "Deadbolt Pro"
	}

	l := &Lock{
		config: config,
		online: true,
	}
	l.dev = device.New(config.ID, device.TypeLock, l)
	l.dev.SetLockUnlock(l)
	return l
}

// Device returns the registered device handle.
func (l *Lock) Device() *device.Device {
	return l.dev
}

// SetOnline forces the lock online or offline.
func (l *Lock) SetOnline(online bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.online = online
}

// SetJammed simulates a jammed bolt.
func (l *Lock) SetJammed(jammed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jammed = jammed
}

func (l *Lock) DeviceInfo() traits.DeviceInfo {
	return traits.DeviceInfo{
		Manufacturer: l.config.Manufacturer,
		Model:        l.config.Model,
		HwVersion:    "3.0",
		SwVersion:    "1.4.2",
	}
}

func (l *Lock) DeviceName() traits.DeviceName {
	return traits.DeviceName{Name: l.config.Name}
}

func (l *Lock) RoomHint() string { return l.config.Room }

func (l *Lock) WillReportState() bool { return true }

func (l *Lock) IsOnline() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.online
}

func (l *Lock) IsLocked() (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locked, nil
}

func (l *Lock) IsJammed() (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.jammed, nil
}

func (l *Lock) SetLocked(lock bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.jammed {
		return traits.ErrDeviceJammingDetected
	}
	if l.locked == lock {
		if lock {
			return traits.ErrAlreadyLocked
		}
		return traits.ErrAlreadyUnlocked
	}
	l.locked = lock
	return nil
}
