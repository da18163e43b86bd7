package ecs

import (
	"github.com/phanxgames/uitree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for uitree transition events.
// Subscribe to this in your ECS systems to react to panels opening and closing.
var TransitionEventType = events.NewEventType[uitree.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transition events are published to TransitionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) uitree.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event uitree.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
