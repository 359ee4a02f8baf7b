package ecs

import (
	"github.com/phanxgames/scrollhero"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ControllerEventType is the Donburi event type for scrollhero controller
// events. Subscribe to this in your ECS systems to react to completion, focus
// and reset.
var ControllerEventType = events.NewEventType[scrollhero.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to ControllerEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) scrollhero.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event scrollhero.Event) {
	ControllerEventType.Publish(s.world, event)
}
