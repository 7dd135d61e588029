package device

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// fakeLamp implements the identity contract plus OnOff and Brightness.
type fakeLamp struct {
	online     bool
	on         bool
	brightness int
	failWith   error
}

func (l *fakeLamp) DeviceInfo() traits.DeviceInfo {
	return traits.DeviceInfo{
		Manufacturer: "acme",
		Model:        "lamp-1",
		HwVersion:    "1.0",
		SwVersion:    "2.3",
	}
}

func (l *fakeLamp) DeviceName() traits.DeviceName {
	return traits.DeviceName{Name: "lamp"}
}

func (l *fakeLamp) RoomHint() string      { return "kitchen" }
func (l *fakeLamp) WillReportState() bool { return false }
func (l *fakeLamp) IsOnline() bool        { return l.online }

func (l *fakeLamp) CommandOnlyOnOff() (*bool, error) { return nil, nil }
func (l *fakeLamp) QueryOnlyOnOff() (*bool, error)   { return nil, nil }

func (l *fakeLamp) IsOn() (bool, error) {
	if l.failWith != nil {
		return false, l.failWith
	}
	return l.on, nil
}

func (l *fakeLamp) SetOn(on bool) error {
	if l.failWith != nil {
		return l.failWith
	}
	l.on = on
	return nil
}

func (l *fakeLamp) CommandOnlyBrightness() (bool, error) { return false, nil }
func (l *fakeLamp) Brightness() (int, error)             { return l.brightness, nil }

func (l *fakeLamp) SetBrightnessAbsolute(brightness int) error {
	l.brightness = brightness
	return nil
}

func (l *fakeLamp) SetBrightnessRelativePercent(percent int) error {
	l.brightness += percent
	return nil
}

func (l *fakeLamp) SetBrightnessRelativeWeight(weight int) error {
	l.brightness += weight * 10
	return nil
}

// fakeLock implements the identity contract plus LockUnlock.
type fakeLock struct {
	locked  bool
	jammed  bool
	lockErr error
}

func (f *fakeLock) DeviceInfo() traits.DeviceInfo { return traits.DeviceInfo{} }
func (f *fakeLock) DeviceName() traits.DeviceName { return traits.DeviceName{Name: "front door"} }
func (f *fakeLock) RoomHint() string              { return "" }
func (f *fakeLock) WillReportState() bool         { return false }
func (f *fakeLock) IsOnline() bool                { return true }

func (f *fakeLock) IsLocked() (bool, error) { return f.locked, nil }
func (f *fakeLock) IsJammed() (bool, error) { return f.jammed, nil }

func (f *fakeLock) SetLocked(lock bool) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.locked = lock
	return nil
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeOutlet, "action.devices.types.OUTLET"},
		{TypeACUnit, "action.devices.types.AC_UNIT"},
		{TypeSecuritySystem, "action.devices.types.SECURITY_SYSTEM"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.typ.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTraitRegistration(t *testing.T) {
	lamp := &fakeLamp{}
	d := New("lamp-1", TypeLight, lamp)
	d.SetOnOff(lamp)
	d.SetBrightness(lamp)
	d.SetOnOff(lamp) // re-registration must not duplicate the trait

	want := []traits.Trait{traits.TraitOnOff, traits.TraitBrightness}
	if got := d.Traits(); !reflect.DeepEqual(got, want) {
		t.Errorf("got traits %v, want %v", got, want)
	}
}

func TestExecuteOnOff(t *testing.T) {
	lamp := &fakeLamp{online: true}
	d := New("lamp-1", TypeLight, lamp)
	d.SetOnOff(lamp)

	states, err := d.Execute(&fulfillment.OnOffCommand{On: true})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !lamp.on {
		t.Error("device was not switched on")
	}
	if !states.Online {
		t.Error("states.Online is false")
	}
	if states.Lock != nil {
		t.Errorf("unexpected lock state %v", *states.Lock)
	}
}

func TestExecuteBrightnessRelative(t *testing.T) {
	tests := []struct {
		name string
		cmd  fulfillment.BrightnessRelativeCommand
		want int
	}{
		{
			name: "percent",
			cmd:  fulfillment.BrightnessRelativeCommand{BrightnessRelativePercent: ptr(20)},
			want: 70,
		},
		{
			name: "weight",
			cmd:  fulfillment.BrightnessRelativeCommand{BrightnessRelativeWeight: ptr(-2)},
			want: 30,
		},
		{
			name: "no parameters",
			cmd:  fulfillment.BrightnessRelativeCommand{},
			want: 50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lamp := &fakeLamp{online: true, brightness: 50}
			d := New("lamp-1", TypeLight, lamp)
			d.SetBrightness(lamp)

			if _, err := d.Execute(&tc.cmd); err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if lamp.brightness != tc.want {
				t.Errorf("got brightness %d, want %d", lamp.brightness, tc.want)
			}
		})
	}
}

func TestExecuteLockReadback(t *testing.T) {
	lock := &fakeLock{}
	d := New("door-1", TypeLock, lock)
	d.SetLockUnlock(lock)

	states, err := d.Execute(&fulfillment.LockUnlockCommand{Lock: true})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if states.Lock == nil || !*states.Lock {
		t.Errorf("got lock state %v, want locked", states.Lock)
	}
}

func TestExecuteErrorCode(t *testing.T) {
	lock := &fakeLock{lockErr: traits.ErrAlreadyLocked}
	d := New("door-1", TypeLock, lock)
	d.SetLockUnlock(lock)

	_, err := d.Execute(&fulfillment.LockUnlockCommand{Lock: true})
	var code traits.ErrorCode
	if !errors.As(err, &code) || code != traits.ErrAlreadyLocked {
		t.Errorf("got error %v, want %v", err, traits.ErrAlreadyLocked)
	}
}

func TestExecuteUnsupportedPanics(t *testing.T) {
	lamp := &fakeLamp{online: true}
	d := New("lamp-1", TypeLight, lamp)
	d.SetOnOff(lamp)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unregistered trait")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, string(fulfillment.CommandDock)) {
			t.Errorf("panic %v does not name the command", r)
		}
	}()
	d.Execute(&fulfillment.DockCommand{}) //nolint:errcheck
}

func TestQueryState(t *testing.T) {
	tests := []struct {
		name string
		lamp fakeLamp
		want fulfillment.QueryDeviceState
	}{
		{
			name: "online",
			lamp: fakeLamp{online: true, on: true, brightness: 80},
			want: fulfillment.QueryDeviceState{
				On:     true,
				Online: true,
				Status: fulfillment.StatusSuccess,
				DeviceState: fulfillment.DeviceState{
					Brightness: ptr(80),
				},
			},
		},
		{
			name: "offline",
			lamp: fakeLamp{online: false, on: true},
			want: fulfillment.QueryDeviceState{
				On:     true,
				Online: false,
				Status: fulfillment.StatusOffline,
			},
		},
		{
			name: "getter failure",
			lamp: fakeLamp{online: true, failWith: traits.ErrHardError},
			want: fulfillment.QueryDeviceState{
				On:        false,
				Online:    true,
				Status:    fulfillment.StatusError,
				ErrorCode: "hardError",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := New("lamp-1", TypeLight, &tc.lamp)
			d.SetOnOff(&tc.lamp)
			d.SetBrightness(&tc.lamp)

			if got := d.QueryState(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQueryStateWithoutOnOff(t *testing.T) {
	lock := &fakeLock{locked: true}
	d := New("door-1", TypeLock, lock)
	d.SetLockUnlock(lock)

	got := d.QueryState()
	if !got.On {
		t.Error("on must default to true for devices without the OnOff trait")
	}
	if got.IsLocked == nil || !*got.IsLocked {
		t.Errorf("got isLocked %v, want locked", got.IsLocked)
	}
}

func TestSync(t *testing.T) {
	lamp := &fakeLamp{online: true}
	d := New("lamp-1", TypeLight, lamp)
	d.SetOnOff(lamp)
	d.SetBrightness(lamp)

	dev, err := d.Sync()
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if dev.ID != "lamp-1" {
		t.Errorf("got id %q, want %q", dev.ID, "lamp-1")
	}
	if dev.Type != "action.devices.types.LIGHT" {
		t.Errorf("got type %q", dev.Type)
	}
	if dev.Name.Name != "lamp" {
		t.Errorf("got name %q, want %q", dev.Name.Name, "lamp")
	}
	if dev.RoomHint != "kitchen" {
		t.Errorf("got room hint %q, want %q", dev.RoomHint, "kitchen")
	}
	want := []traits.Trait{traits.TraitOnOff, traits.TraitBrightness}
	if !reflect.DeepEqual(dev.Traits, want) {
		t.Errorf("got traits %v, want %v", dev.Traits, want)
	}
	if dev.Attributes.CommandOnlyBrightness == nil || *dev.Attributes.CommandOnlyBrightness {
		t.Errorf("got commandOnlyBrightness %v, want false", dev.Attributes.CommandOnlyBrightness)
	}
}

// fakeThermostat records relative-adjustment calls.
type fakeThermostat struct {
	degreeCalls int
	weightCalls int
	lastDegree  float64
	lastWeight  float64
}

func (f *fakeThermostat) AvailableThermostatModes() ([]traits.ThermostatMode, error) {
	return []traits.ThermostatMode{traits.ThermostatModeHeat}, nil
}
func (f *fakeThermostat) ThermostatTemperatureRange() (*traits.TemperatureRange, error) {
	return nil, nil
}
func (f *fakeThermostat) ThermostatTemperatureUnit() (traits.TemperatureUnit, error) {
	return traits.TemperatureUnitCelsius, nil
}
func (f *fakeThermostat) BufferRangeCelsius() (*float64, error)         { return nil, nil }
func (f *fakeThermostat) CommandOnlyTemperatureSetting() (*bool, error) { return nil, nil }
func (f *fakeThermostat) QueryOnlyTemperatureSetting() (*bool, error)   { return nil, nil }
func (f *fakeThermostat) ActiveThermostatMode() (traits.ThermostatMode, error) {
	return traits.ThermostatModeNone, nil
}
func (f *fakeThermostat) TargetTempReachedEstimateUnixTimestampSec() (*int64, error) {
	return nil, nil
}
func (f *fakeThermostat) ThermostatHumidityAmbient() (*float64, error) { return nil, nil }
func (f *fakeThermostat) ThermostatState() (traits.ThermostatState, error) {
	return traits.ThermostatState{}, nil
}
func (f *fakeThermostat) SetTemperatureSetpoint(float64) error          { return nil }
func (f *fakeThermostat) SetTemperatureSetRange(_, _ float64) error     { return nil }
func (f *fakeThermostat) SetThermostatMode(traits.ThermostatMode) error { return nil }

func (f *fakeThermostat) SetTemperatureRelativeDegree(degrees float64) error {
	f.degreeCalls++
	f.lastDegree = degrees
	return nil
}

func (f *fakeThermostat) SetTemperatureRelativeWeight(weight float64) error {
	f.weightCalls++
	f.lastWeight = weight
	return nil
}

func TestExecuteTemperatureRelative(t *testing.T) {
	tests := []struct {
		name        string
		cmd         fulfillment.TemperatureRelativeCommand
		degreeCalls int
		weightCalls int
	}{
		{
			name:        "degree only",
			cmd:         fulfillment.TemperatureRelativeCommand{ThermostatTemperatureRelativeDegree: ptr(2.0)},
			degreeCalls: 1,
		},
		{
			name:        "weight only",
			cmd:         fulfillment.TemperatureRelativeCommand{ThermostatTemperatureRelativeWeight: ptr(-1.0)},
			weightCalls: 1,
		},
		{
			// Both parameters are independent adjustments; each one
			// present gets its own invocation.
			name: "both parameters",
			cmd: fulfillment.TemperatureRelativeCommand{
				ThermostatTemperatureRelativeDegree: ptr(2.0),
				ThermostatTemperatureRelativeWeight: ptr(1.0),
			},
			degreeCalls: 1,
			weightCalls: 1,
		},
		{
			name: "no parameters",
			cmd:  fulfillment.TemperatureRelativeCommand{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			therm := &fakeThermostat{}
			d := New("thermostat-1", TypeThermostat, &fakeLamp{online: true})
			d.SetTemperatureSetting(therm)

			if _, err := d.Execute(&tc.cmd); err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if therm.degreeCalls != tc.degreeCalls {
				t.Errorf("got %d degree calls, want %d", therm.degreeCalls, tc.degreeCalls)
			}
			if therm.weightCalls != tc.weightCalls {
				t.Errorf("got %d weight calls, want %d", therm.weightCalls, tc.weightCalls)
			}
		})
	}
}

// fakeFan records relative speed adjustments.
type fakeFan struct {
	weightCalls  int
	percentCalls int
}

func (f *fakeFan) IsReversible() (*bool, error)        { return nil, nil }
func (f *fakeFan) CommandOnlyFanSpeed() (*bool, error) { return nil, nil }
func (f *fakeFan) AvailableFanSpeeds() (*traits.AvailableFanSpeeds, error) {
	return nil, nil
}
func (f *fakeFan) SupportsFanSpeedPercent() (*bool, error)   { return ptr(true), nil }
func (f *fakeFan) CurrentFanSpeedSetting() (*string, error)  { return nil, nil }
func (f *fakeFan) CurrentFanSpeedPercent() (*float64, error) { return nil, nil }
func (f *fakeFan) SetFanSpeedSetting(string) error           { return nil }
func (f *fakeFan) SetFanSpeedPercent(float64) error          { return nil }
func (f *fakeFan) Reverse() error                            { return nil }

func (f *fakeFan) SetFanSpeedRelativeWeight(int) error {
	f.weightCalls++
	return nil
}

func (f *fakeFan) SetFanSpeedRelativePercent(float64) error {
	f.percentCalls++
	return nil
}

func TestExecuteFanSpeedRelativePrecedence(t *testing.T) {
	fan := &fakeFan{}
	d := New("fan-1", TypeFan, &fakeLamp{online: true})
	d.SetFanSpeed(fan)

	_, err := d.Execute(&fulfillment.SetFanSpeedRelativeCommand{
		FanSpeedRelativeWeight:  ptr(2),
		FanSpeedRelativePercent: ptr(10.0),
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if fan.weightCalls != 1 {
		t.Errorf("got %d weight calls, want 1", fan.weightCalls)
	}
	if fan.percentCalls != 0 {
		t.Errorf("got %d percent calls, want 0", fan.percentCalls)
	}
}

// fakeAlarm records arm and cancel calls.
type fakeAlarm struct {
	armCalls    int
	cancelCalls int
	lastArm     bool
}

func (f *fakeAlarm) AvailableArmLevels() ([]traits.ArmLevel, error) { return nil, nil }
func (f *fakeAlarm) IsOrdered() (bool, error)                       { return false, nil }
func (f *fakeAlarm) IsArmed() (bool, error)                         { return false, nil }
func (f *fakeAlarm) CurrentArmLevel() (string, error)               { return "", nil }
func (f *fakeAlarm) ExitAllowance() (int, error)                    { return 0, nil }
func (f *fakeAlarm) ArmWithLevel(bool, string) error                { return nil }

func (f *fakeAlarm) Arm(arm bool) error {
	f.armCalls++
	f.lastArm = arm
	return nil
}

func (f *fakeAlarm) CancelArm() error {
	f.cancelCalls++
	return nil
}

func TestExecuteArmDisarmCancel(t *testing.T) {
	tests := []struct {
		name        string
		cmd         fulfillment.ArmDisarmCommand
		armCalls    int
		cancelCalls int
	}{
		{
			name:        "cancel true",
			cmd:         fulfillment.ArmDisarmCommand{Arm: true, Cancel: ptr(true)},
			cancelCalls: 1,
		},
		{
			// A false cancel settles the command without arming.
			name: "cancel false",
			cmd:  fulfillment.ArmDisarmCommand{Arm: true, Cancel: ptr(false)},
		},
		{
			name:     "no cancel",
			cmd:      fulfillment.ArmDisarmCommand{Arm: true},
			armCalls: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			alarm := &fakeAlarm{}
			d := New("alarm-1", TypeSecuritySystem, &fakeLamp{online: true})
			d.SetArmDisarm(alarm)

			if _, err := d.Execute(&tc.cmd); err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if alarm.armCalls != tc.armCalls {
				t.Errorf("got %d arm calls, want %d", alarm.armCalls, tc.armCalls)
			}
			if alarm.cancelCalls != tc.cancelCalls {
				t.Errorf("got %d cancel calls, want %d", alarm.cancelCalls, tc.cancelCalls)
			}
		})
	}
}
