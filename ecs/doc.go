// Package ecs provides ECS adapters for talkie's avatar events.
//
// The primary adapter is [NewDonburiSink], which bridges avatar events
// (speech started and ended, character swaps, expressions, weather) into a
// [Donburi] world as typed events. Subscribe to [AvatarEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
