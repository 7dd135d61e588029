package fulfillment

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

func TestDecodeRequestExecute(t *testing.T) {
	payload := `
	{
	  "requestId": "ff36a3cc-ec34-11e6-b1a0-64510650abcf",
	  "inputs": [
	    {
	      "intent": "action.devices.EXECUTE",
	      "payload": {
	        "commands": [
	          {
	            "devices": [
	              {
	                "id": "123",
	                "customData": {
	                  "fooValue": 74,
	                  "barValue": true,
	                  "bazValue": "sheepdip"
	                }
	              },
	              {
	                "id": "456"
	              }
	            ],
	            "execution": [
	              {
	                "command": "action.devices.commands.OnOff",
	                "params": {
	                  "on": true
	                }
	              }
	            ]
	          }
	        ]
	      }
	    }
	  ]
	}`

	req, err := DecodeRequest([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}

	want := &Request{
		RequestID: "ff36a3cc-ec34-11e6-b1a0-64510650abcf",
		Inputs: []Input{
			{
				Intent: IntentExecute,
				Execute: &ExecuteRequest{
					Commands: []CommandGroup{
						{
							Devices: []DeviceRef{{ID: "123"}, {ID: "456"}},
							Execution: []Execution{
								{Command: &OnOffCommand{On: true}},
							},
						},
					},
				},
			},
		},
	}
	if !reflect.DeepEqual(req, want) {
		t.Errorf("decoded request mismatch:\ngot  %+v\nwant %+v", req, want)
	}
}

func TestDecodeRequestSyncAndQuery(t *testing.T) {
	payload := `
	{
	  "requestId": "r-1",
	  "inputs": [
	    {"intent": "action.devices.SYNC"},
	    {
	      "intent": "action.devices.QUERY",
	      "payload": {"devices": [{"id": "123"}, {"id": "456"}]}
	    }
	  ]
	}`

	req, err := DecodeRequest([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if len(req.Inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(req.Inputs))
	}
	if req.Inputs[0].Intent != IntentSync {
		t.Errorf("expected SYNC intent, got %q", req.Inputs[0].Intent)
	}
	if req.Inputs[1].Intent != IntentQuery {
		t.Errorf("expected QUERY intent, got %q", req.Inputs[1].Intent)
	}
	wantDevices := []DeviceRef{{ID: "123"}, {ID: "456"}}
	if !reflect.DeepEqual(req.Inputs[1].Query.Devices, wantDevices) {
		t.Errorf("query devices mismatch: got %+v", req.Inputs[1].Query.Devices)
	}
}

func TestDecodeRequestUnknownIntent(t *testing.T) {
	payload := `{"requestId": "r-1", "inputs": [{"intent": "action.devices.DISCONNECT"}]}`
	if _, err := DecodeRequest([]byte(payload)); err == nil {
		t.Error("expected error for unknown intent")
	}
}

func TestExecutionDecode(t *testing.T) {
	five := 5
	tests := []struct {
		name string
		json string
		want Command
	}{
		{
			name: "on off",
			json: `{"command": "action.devices.commands.OnOff", "params": {"on": true}}`,
			want: &OnOffCommand{On: true},
		},
		{
			name: "lock unlock",
			json: `{"command": "action.devices.commands.LockUnlock", "params": {"lock": true, "followUpToken": "tok"}}`,
			want: &LockUnlockCommand{Lock: true, FollowUpToken: "tok"},
		},
		{
			name: "brightness relative weight only",
			json: `{"command": "action.devices.commands.BrightnessRelative", "params": {"brightnessRelativeWeight": 5}}`,
			want: &BrightnessRelativeCommand{BrightnessRelativeWeight: &five},
		},
		{
			name: "no params",
			json: `{"command": "action.devices.commands.Dock"}`,
			want: &DockCommand{},
		},
		{
			name: "wake",
			json: `{"command": "action.devices.commands.Wake", "params": {"duration": 5}}`,
			want: &WakeCommand{Duration: &five},
		},
		{
			name: "media repeat mode",
			json: `{"command": "action.devices.commands.mediaRepeatMode", "params": {"isOn": true}}`,
			want: &MediaRepeatModeCommand{IsOn: true},
		},
		{
			name: "open close relative",
			json: `{"command": "action.devices.commands.OpenCloseRelative", "params": {"openRelativePercent": 5, "openDirection": "UP"}}`,
			want: &OpenCloseRelativeCommand{OpenRelativePercent: 5, OpenDirection: "UP"},
		},
		{
			name: "set modes",
			json: `{"command": "action.devices.commands.SetModes", "params": {"updateModeSettings": {"load": "small_load"}}}`,
			want: &SetModesCommand{UpdateModeSettings: map[string]string{"load": "small_load"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Execution
			if err := json.Unmarshal([]byte(tt.json), &e); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual(e.Command, tt.want) {
				t.Errorf("command mismatch:\ngot  %#v\nwant %#v", e.Command, tt.want)
			}
			if e.Command.Name() != tt.want.Name() {
				t.Errorf("name mismatch: got %q want %q", e.Command.Name(), tt.want.Name())
			}
		})
	}
}

func TestExecutionDecodeUnknownCommand(t *testing.T) {
	var e Execution
	err := json.Unmarshal([]byte(`{"command": "action.devices.commands.Nope", "params": {}}`), &e)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecutionRoundTrip(t *testing.T) {
	for name, factory := range commandFactories {
		t.Run(string(name), func(t *testing.T) {
			e := Execution{Command: factory()}
			data, err := json.Marshal(e)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var decoded Execution
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if decoded.Command.Name() != name {
				t.Errorf("name mismatch: got %q want %q", decoded.Command.Name(), name)
			}
		})
	}
}

func TestEncodeQueryResponseOffline(t *testing.T) {
	resp := &Response{
		RequestID: "r-1",
		Payload: &QueryPayload{
			Devices: map[string]QueryDeviceState{
				"123": {On: true, Online: false, Status: StatusOffline},
			},
		},
	}
	data, err := EncodeResponse(resp)
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	want := `{"requestId":"r-1","payload":{"devices":{"123":{"on":true,"online":false,"status":"OFFLINE"}}}}`
	if string(data) != want {
		t.Errorf("encoded response mismatch:\ngot  %s\nwant %s", data, want)
	}
}

func TestEncodeExecuteResponseError(t *testing.T) {
	resp := &Response{
		RequestID: "r-1",
		Payload: &ExecutePayload{
			Commands: []ExecuteResult{
				{IDs: []string{"123"}, Status: StatusError, ErrorCode: "alreadyLocked"},
			},
		},
	}
	data, err := EncodeResponse(resp)
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	want := `{"requestId":"r-1","payload":{"commands":[{"ids":["123"],"status":"ERROR","errorCode":"alreadyLocked"}]}}`
	if string(data) != want {
		t.Errorf("encoded response mismatch:\ngot  %s\nwant %s", data, want)
	}
}

func TestEncodeSyncResponse(t *testing.T) {
	commandOnly := true
	resp := &Response{
		RequestID: "r-1",
		Payload: &SyncPayload{
			AgentUserID: "user-1",
			Devices: []SyncDevice{
				{
					ID:     "123",
					Type:   "action.devices.types.LIGHT",
					Traits: []traits.Trait{traits.TraitOnOff},
				},
			},
		},
	}
	sd := &resp.Payload.(*SyncPayload).Devices[0]
	sd.Attributes.CommandOnlyOnOff = &commandOnly

	data, err := EncodeResponse(resp)
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("encoded response is not valid JSON: %v", err)
	}
	payload := got["payload"].(map[string]any)
	if payload["agentUserId"] != "user-1" {
		t.Errorf("agentUserId mismatch: %v", payload["agentUserId"])
	}
	device := payload["devices"].([]any)[0].(map[string]any)
	attrs := device["attributes"].(map[string]any)
	if attrs["commandOnlyOnOff"] != true {
		t.Errorf("commandOnlyOnOff mismatch: %v", attrs["commandOnlyOnOff"])
	}
	if _, present := attrs["queryOnlyOnOff"]; present {
		t.Error("unset attribute should be omitted")
	}
}
