// Package ecs provides ECS adapters for talkie.
package ecs

import (
	"github.com/phanxgames/talkie"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AvatarEventType is the Donburi event type for talkie avatar events.
// Subscribe to this in your ECS systems to react to speech, character,
// expression and weather changes.
var AvatarEventType = events.NewEventType[talkie.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Avatar
// events are published to AvatarEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) talkie.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event talkie.Event) {
	AvatarEventType.Publish(s.world, event)
}
