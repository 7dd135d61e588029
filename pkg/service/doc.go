// Package service provides the fulfillment orchestrator.
//
// A Service owns a collection of devices and an agent user id, and
// turns decoded fulfillment requests into responses:
//
//	svc := service.New("agent-user-1234",
//		service.WithLogger(log.NewSlogAdapter(slog.Default())),
//	)
//	svc.AddDevice(lamp)
//	svc.AddDevice(lock)
//
//	resp, err := svc.HandleRequest(req)
//
// HandleRequest fans out over the request's intent: SYNC enumerates
// every registered device, QUERY reports the state of the devices the
// request names, and EXECUTE runs each command group against its
// target devices. Device ids the request names but the service does
// not know are dropped from the response without error.
//
// # Inputs
//
// A request carries a list of inputs, but in practice the platform
// sends exactly one. The service handles the first input and ignores
// the rest.
//
// # Logging
//
// When configured with a logger, the service emits one event per
// handled intent and one per dispatched command. See pkg/log.
package service
