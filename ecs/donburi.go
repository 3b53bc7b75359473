package ecs

import (
	"github.com/phanxgames/tilepaste"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollectEventType is the Donburi event type for tilepaste collect events.
var CollectEventType = events.NewEventType[tilepaste.CollectEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Collect events are published to CollectEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tilepaste.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollect(event tilepaste.CollectEvent) {
	CollectEventType.Publish(s.world, event)
}
