package effects

import (
	"fmt"

	"github.com/npillmayer/subfx/dom"
)

// EventType enumerates the host lifecycle events the engine listens to.
type EventType int

const (
	SlideEntered        EventType = iota // a slide became active, Target is the slide
	SubstepEntered                       // cursor moved onto a substep, Target is the slide
	SubstepLeaveAborted                  // a slide-leave turned into a substep move, Target is the slide
	SlideLeaving                         // Target is about to be left for Next
)

var eventNames = [...]string{
	"slide-entered",
	"substep-entered",
	"substep-transition-aborted",
	"slide-about-to-leave",
}

// EventTypes lists all events an Engine subscribes to, in lifecycle order.
var EventTypes = []EventType{SlideLeaving, SlideEntered, SubstepLeaveAborted, SubstepEntered}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(t))
	}
	return eventNames[t]
}

// Event is a lifecycle event of the host.
type Event struct {
	Type   EventType
	Target dom.Element // the slide the event concerns
	Next   dom.Element // upcoming slide, for SlideLeaving only
}

// Handler is a callback for host events.
type Handler func(Event)

// Bus is the narrow interface a host has to offer for the engine to attach
// to it.
type Bus interface {
	Subscribe(EventType, Handler)
}
