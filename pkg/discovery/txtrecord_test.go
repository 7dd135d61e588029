package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAgentTXT(t *testing.T) {
	txt := EncodeAgentTXT(&AgentInfo{
		AgentUserID: "agent-1",
		DeviceIDs:   []string{"lamp-1", "lock-1"},
		DisplayName: "Kitchen Hub",
	})

	assert.Equal(t, "agent-1", txt[TXTKeyAgentUserID])
	assert.Equal(t, ProtocolVersion, txt[TXTKeyVersion])
	assert.Equal(t, "lamp-1,lock-1", txt[TXTKeyDeviceIDs])
	assert.Equal(t, "Kitchen Hub", txt[TXTKeyDisplayName])
}

func TestEncodeAgentTXTOmitsEmptyOptionals(t *testing.T) {
	txt := EncodeAgentTXT(&AgentInfo{AgentUserID: "agent-1"})

	assert.NotContains(t, txt, TXTKeyDeviceIDs)
	assert.NotContains(t, txt, TXTKeyDisplayName)
}

func TestDecodeAgentTXTRoundTrip(t *testing.T) {
	original := &AgentInfo{
		AgentUserID: "agent-1",
		DeviceIDs:   []string{"lamp-1", "lock-1", "thermostat-1"},
		DisplayName: "Hub",
	}

	decoded, err := DecodeAgentTXT(EncodeAgentTXT(original))
	require.NoError(t, err)
	assert.Equal(t, original.AgentUserID, decoded.AgentUserID)
	assert.Equal(t, original.DeviceIDs, decoded.DeviceIDs)
	assert.Equal(t, original.DisplayName, decoded.DisplayName)
}

func TestDecodeAgentTXTErrors(t *testing.T) {
	tests := []struct {
		name    string
		txt     TXTRecordMap
		wantErr error
	}{
		{
			name:    "missing agent user id",
			txt:     TXTRecordMap{TXTKeyVersion: ProtocolVersion},
			wantErr: ErrMissingRequired,
		},
		{
			name:    "empty agent user id",
			txt:     TXTRecordMap{TXTKeyAgentUserID: "", TXTKeyVersion: ProtocolVersion},
			wantErr: ErrMissingRequired,
		},
		{
			name:    "missing version",
			txt:     TXTRecordMap{TXTKeyAgentUserID: "agent-1"},
			wantErr: ErrMissingRequired,
		},
		{
			name:    "unsupported version",
			txt:     TXTRecordMap{TXTKeyAgentUserID: "agent-1", TXTKeyVersion: "99"},
			wantErr: ErrInvalidTXTRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAgentTXT(tt.txt)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeAgentTXTSkipsBlankDeviceIDs(t *testing.T) {
	info, err := DecodeAgentTXT(TXTRecordMap{
		TXTKeyAgentUserID: "agent-1",
		TXTKeyVersion:     ProtocolVersion,
		TXTKeyDeviceIDs:   "lamp-1, ,lock-1,",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"lamp-1", "lock-1"}, info.DeviceIDs)
}

func TestTXTRecordStringsRoundTrip(t *testing.T) {
	txt := TXTRecordMap{"aid": "agent-1", "ver": "1", "flag": ""}

	assert.Equal(t, txt, StringsToTXTRecords(TXTRecordsToStrings(txt)))
}

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "fulfillment-agent-1", InstanceName(&AgentInfo{AgentUserID: "agent-1"}))
	assert.Equal(t, "hub", InstanceName(&AgentInfo{AgentUserID: "agent-1", InstanceName: "hub"}))

	long := InstanceName(&AgentInfo{InstanceName: strings.Repeat("x", 100)})
	assert.Len(t, long, MaxInstanceNameLen)
}

func TestValidateInstanceName(t *testing.T) {
	assert.NoError(t, ValidateInstanceName("fulfillment-agent-1"))
	assert.ErrorIs(t, ValidateInstanceName(""), ErrInstanceNameTooLong)
	assert.ErrorIs(t, ValidateInstanceName(strings.Repeat("x", 64)), ErrInstanceNameTooLong)
}

func TestAdvertiserStopWithoutAdvertise(t *testing.T) {
	adv, err := NewAdvertiser(AdvertiserConfig{})
	require.NoError(t, err)

	assert.ErrorIs(t, adv.Stop(), ErrNotAdvertising)
	assert.ErrorIs(t, adv.Update(&AgentInfo{AgentUserID: "agent-1"}), ErrNotAdvertising)
}
