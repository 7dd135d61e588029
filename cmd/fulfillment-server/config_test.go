package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
listen_address: ":9090"
agent_user_id: "agent-user-1234"
token_hashes:
  - "$2a$10$abcdefghijklmnopqrstuv"
log_file: "traffic.flog"
discovery:
  enabled: true
  instance_name: "test-hub"
devices:
  - id: lamp-1
    kind: lamp
    name: Desk Lamp
    room: office
  - id: lock-1
    kind: lock
    name: Front Door
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddress)
	assert.Equal(t, "agent-user-1234", cfg.AgentUserID)
	assert.Len(t, cfg.TokenHashes, 1)
	assert.Equal(t, "traffic.flog", cfg.LogFile)
	assert.True(t, cfg.Discovery.Enabled)
	assert.Equal(t, "test-hub", cfg.Discovery.InstanceName)
	require.Len(t, cfg.Devices, 2)
	assert.Equal(t, DeviceKindLamp, cfg.Devices[0].Kind)
	assert.Equal(t, "office", cfg.Devices[0].Room)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`agent_user_id: "agent-1"`))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddress)
	assert.Empty(t, cfg.TokenHashes)
	assert.False(t, cfg.Discovery.Enabled)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", `agent_user_id: [`},
		{"missing agent user id", `listen_address: ":8080"`},
		{
			"device without id",
			"agent_user_id: a\ndevices:\n  - kind: lamp\n",
		},
		{
			"duplicate device id",
			"agent_user_id: a\ndevices:\n  - {id: lamp-1, kind: lamp}\n  - {id: lamp-1, kind: lock}\n",
		},
		{
			"unknown kind",
			"agent_user_id: a\ndevices:\n  - {id: x, kind: toaster}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuildDevice(t *testing.T) {
	lamp := buildDevice(DeviceEntry{ID: "lamp-1", Kind: DeviceKindLamp, Name: "Desk Lamp"})
	assert.Equal(t, "lamp-1", lamp.ID())
	assert.Equal(t, "action.devices.types.LIGHT", string(lamp.Type()))

	lock := buildDevice(DeviceEntry{ID: "lock-1", Kind: DeviceKindLock})
	assert.Equal(t, "action.devices.types.LOCK", string(lock.Type()))

	therm := buildDevice(DeviceEntry{ID: "t-1", Kind: DeviceKindThermostat})
	assert.Equal(t, "action.devices.types.THERMOSTAT", string(therm.Type()))
}

func TestListenPort(t *testing.T) {
	assert.Equal(t, uint16(8080), listenPort(":8080"))
	assert.Equal(t, uint16(9090), listenPort("0.0.0.0:9090"))
	assert.Equal(t, uint16(0), listenPort("bogus"))
}
