// Package ecs provides ECS adapters for scrollhero's controller events.
//
// The primary adapter is [NewDonburiSink], which forwards controller events
// (mount, completion edges, focus, snap, reset) into a [Donburi] world as
// typed events. Subscribe to [ControllerEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	controller.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
