// Package ecs provides ECS adapters for uitree's transition events.
//
// The primary adapter is [NewDonburiSink], which bridges uitree transition
// events (started, settled, forced, cancelled, rejected) into a [Donburi]
// world as typed events. Subscribe to [TransitionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tree.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
