// Package fulfillment defines the JSON wire format for smart home
// fulfillment requests and responses.
//
// A fulfillment exchange is a single JSON request carrying one or more
// intent inputs, answered by a single JSON response:
//
//	{
//	  "requestId": "ff36a3cc-ec34-11e6-b1a0-64510650abcf",
//	  "inputs": [
//	    {"intent": "action.devices.EXECUTE", "payload": {...}}
//	  ]
//	}
//
// # Intents
//
// There are three intents:
//   - SYNC: enumerate devices, their traits and attributes
//   - QUERY: report current state for a set of devices
//   - EXECUTE: run commands against a set of devices
//
// # Commands
//
// EXECUTE payloads carry a list of command groups. Each group pairs
// device references with executions. An execution is a tagged union
// keyed on the "command" identifier; this package decodes it into the
// matching params struct (OnOffCommand, LockUnlockCommand, ...). The
// command identifiers and parameter field names follow the published
// smart home contract verbatim.
//
// # Responses
//
// Response payloads mirror the intent: SyncPayload, QueryPayload and
// ExecutePayload. Optional fields are omitted from the encoded JSON
// when unset.
package fulfillment
