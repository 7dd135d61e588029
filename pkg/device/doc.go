/*
Package device holds the registry entry for one controllable device and
maps intents onto its registered capability traits.

A Device is built from an identifier, a Type and the identity contract,
then gains capabilities through the Set methods:

	d := device.New("kitchen-light", device.TypeLight, light)
	d.SetOnOff(light)
	d.SetBrightness(light)

Registering a capability adds its trait to the SYNC traits list, wires
its commands into Execute and includes its state in QueryState. The
order of the traits list follows registration order.

# Dispatch

Execute routes a decoded command to the matching capability. Commands
for a capability that was never registered indicate a platform-side
inconsistency with the advertised traits and panic.

# Locking

A Device serializes Execute, QueryState and Sync through an internal
mutex, so trait implementations are never entered concurrently through
the same Device.
*/
package device
