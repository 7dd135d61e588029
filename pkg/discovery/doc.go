// Package discovery advertises a fulfillment agent on the local
// network over mDNS.
//
// Local execution paths discover agents by browsing for the
// fulfillment service type and matching the TXT records against their
// scan configuration. The advertiser publishes the agent user id and
// the ids of the devices the agent fulfills:
//
//	adv, err := discovery.NewAdvertiser(discovery.AdvertiserConfig{})
//	err = adv.Advertise(ctx, &discovery.AgentInfo{
//		AgentUserID: "agent-user-1234",
//		Port:        8080,
//		DeviceIDs:   []string{"lamp-1", "lock-1"},
//	})
//	defer adv.Stop()
//
// Call Update after adding or removing devices to refresh the TXT
// records without re-registering the service.
package discovery
