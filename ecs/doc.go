// Package ecs provides ECS adapters for tilepaste's game events.
//
// The primary adapter is [NewDonburiSink], which forwards collect events
// from a [tilepaste.Game] into a [Donburi] world as typed events.
// Subscribe to [CollectEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
