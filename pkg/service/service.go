package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smarthome-protocol/smarthome-go/pkg/device"
	"github.com/smarthome-protocol/smarthome-go/pkg/fulfillment"
	"github.com/smarthome-protocol/smarthome-go/pkg/log"
	"github.com/smarthome-protocol/smarthome-go/pkg/traits"
)

// ErrNoInputs is returned by HandleRequest when the request carries no
// inputs.
var ErrNoInputs = errors.New("request has no inputs")

// Service is the fulfillment orchestrator. It owns the registered
// devices and answers SYNC, QUERY and EXECUTE requests for them.
type Service struct {
	agentUserID string
	sessionID   string
	logger      log.Logger

	mu      sync.Mutex
	devices []*device.Device
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the protocol event logger. Without it events are
// discarded.
func WithLogger(logger log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service for the given agent user id.
func New(agentUserID string, opts ...Option) *Service {
	s := &Service{
		agentUserID: agentUserID,
		sessionID:   uuid.NewString(),
		logger:      log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AgentUserID returns the agent user id reported in SYNC responses.
func (s *Service) AgentUserID() string {
	return s.agentUserID
}

// SessionID returns the id assigned to this service instance. A new
// id is generated for every New call.
func (s *Service) SessionID() string {
	return s.sessionID
}

// AddDevice registers a device. Device ids must be unique; when two
// devices share an id, requests resolve to the one added first.
func (s *Service) AddDevice(d *device.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devices = append(s.devices, d)
}

// RemoveDevice unregisters the device with the given id and signals it
// to disconnect. It reports whether a device was removed.
func (s *Service) RemoveDevice(id string) bool {
	s.mu.Lock()
	var removed *device.Device
	kept := s.devices[:0]
	for _, d := range s.devices {
		if removed == nil && d.ID() == id {
			removed = d
			continue
		}
		kept = append(kept, d)
	}
	s.devices = kept
	s.mu.Unlock()

	if removed == nil {
		return false
	}
	removed.Disconnect()
	return true
}

// Devices returns a snapshot of the registered devices.
func (s *Service) Devices() []*device.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*device.Device, len(s.devices))
	copy(out, s.devices)
	return out
}

func (s *Service) lookup(id string) *device.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.devices {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// HandleRequest answers a fulfillment request. Only the first input is
// handled; the platform sends one input per request.
func (s *Service) HandleRequest(req *fulfillment.Request) (*fulfillment.Response, error) {
	if req == nil || len(req.Inputs) == 0 {
		s.logError("", "request has no inputs", "")
		return nil, ErrNoInputs
	}
	input := req.Inputs[0]

	start := time.Now()
	var (
		payload any
		count   int
	)
	switch input.Intent {
	case fulfillment.IntentSync:
		payload, count = s.sync()
	case fulfillment.IntentQuery:
		payload, count = s.query(input.Query)
	case fulfillment.IntentExecute:
		payload, count = s.execute(req.RequestID, input.Execute)
	default:
		s.logError(req.RequestID, "unknown intent", string(input.Intent))
		return nil, fmt.Errorf("unknown intent: %q", input.Intent)
	}

	elapsed := time.Since(start)
	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		RequestID:   req.RequestID,
		Category:    log.CategoryIntent,
		AgentUserID: s.agentUserID,
		Intent: &log.IntentEvent{
			Intent:         input.Intent,
			DeviceCount:    count,
			ProcessingTime: &elapsed,
		},
	})

	return &fulfillment.Response{RequestID: req.RequestID, Payload: payload}, nil
}

// HandleJSON decodes a request from JSON, handles it and encodes the
// response.
func (s *Service) HandleJSON(data []byte) ([]byte, error) {
	req, err := fulfillment.DecodeRequest(data)
	if err != nil {
		return nil, err
	}
	resp, err := s.HandleRequest(req)
	if err != nil {
		return nil, err
	}
	return fulfillment.EncodeResponse(resp)
}

// sync enumerates every registered device. Any enumeration error
// degrades the whole payload to a deviceOffline error.
func (s *Service) sync() (*fulfillment.SyncPayload, int) {
	payload := &fulfillment.SyncPayload{AgentUserID: s.agentUserID}

	devices := s.Devices()
	for _, d := range devices {
		dev, err := d.Sync()
		if err != nil {
			return &fulfillment.SyncPayload{
				AgentUserID: s.agentUserID,
				ErrorCode:   string(traits.ErrDeviceOffline),
				DebugString: err.Error(),
			}, len(devices)
		}
		payload.Devices = append(payload.Devices, dev)
	}
	return payload, len(devices)
}

// query reports the state of each named device. Unknown ids are
// omitted from the response.
func (s *Service) query(req *fulfillment.QueryRequest) (*fulfillment.QueryPayload, int) {
	payload := &fulfillment.QueryPayload{
		Devices: make(map[string]fulfillment.QueryDeviceState),
	}
	if req == nil {
		return payload, 0
	}
	for _, ref := range req.Devices {
		d := s.lookup(ref.ID)
		if d == nil {
			continue
		}
		payload.Devices[ref.ID] = d.QueryState()
	}
	return payload, len(payload.Devices)
}

// execute runs every command group against its target devices. Each
// execution yields its own single-id result; unknown device ids are
// dropped.
func (s *Service) execute(requestID string, req *fulfillment.ExecuteRequest) (*fulfillment.ExecutePayload, int) {
	payload := &fulfillment.ExecutePayload{}
	if req == nil {
		return payload, 0
	}

	targeted := make(map[string]struct{})
	for _, group := range req.Commands {
		for _, ref := range group.Devices {
			d := s.lookup(ref.ID)
			if d == nil {
				continue
			}
			targeted[ref.ID] = struct{}{}
			for _, exec := range group.Execution {
				result := s.executeOne(d, exec.Command)
				s.logCommand(requestID, ref.ID, exec.Command.Name(), result)
				payload.Commands = append(payload.Commands, result)
			}
		}
	}
	return payload, len(targeted)
}

// executeOne dispatches a single command to a device and folds the
// outcome into a result. A device error with a protocol error code
// maps to ERROR; anything else counts as the device being unreachable.
func (s *Service) executeOne(d *device.Device, cmd fulfillment.Command) fulfillment.ExecuteResult {
	result := fulfillment.ExecuteResult{IDs: []string{d.ID()}}

	states, err := d.Execute(cmd)
	if err == nil {
		result.Status = fulfillment.StatusSuccess
		result.States = states
		return result
	}

	var code traits.ErrorCode
	if errors.As(err, &code) {
		result.Status = fulfillment.StatusError
		result.ErrorCode = string(code)
		return result
	}
	result.Status = fulfillment.StatusOffline
	result.DebugString = err.Error()
	return result
}

func (s *Service) logCommand(requestID, deviceID string, name fulfillment.CommandName, result fulfillment.ExecuteResult) {
	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		RequestID:   requestID,
		Category:    log.CategoryCommand,
		AgentUserID: s.agentUserID,
		DeviceID:    deviceID,
		Command: &log.CommandEvent{
			Command:   name,
			Status:    result.Status,
			ErrorCode: result.ErrorCode,
		},
	})
}

func (s *Service) logError(requestID, message, context string) {
	s.logger.Log(log.Event{
		Timestamp:   time.Now(),
		RequestID:   requestID,
		Category:    log.CategoryError,
		AgentUserID: s.agentUserID,
		Error: &log.ErrorEventData{
			Message: message,
			Context: context,
		},
	})
}
