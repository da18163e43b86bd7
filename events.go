package uitree

import "github.com/google/uuid"

// EventType identifies a kind of transition event.
type EventType uint8

const (
	EventShowStarted  EventType = iota // a show sequence began
	EventShown                         // a show sequence completed
	EventHideStarted                   // a hide sequence began
	EventHidden                        // a hide sequence completed
	EventForcedShown                   // the node was snapped to Shown
	EventForcedHidden                  // the node was snapped to Hidden
	EventCancelled                     // an in-flight sequence was cancelled
	EventRejected                      // a request was blocked by a hiding ancestor
)

// String returns the event name used in logs and the CLI.
func (e EventType) String() string {
	switch e {
	case EventShowStarted:
		return "show-started"
	case EventShown:
		return "shown"
	case EventHideStarted:
		return "hide-started"
	case EventHidden:
		return "hidden"
	case EventForcedShown:
		return "forced-shown"
	case EventForcedHidden:
		return "forced-hidden"
	case EventCancelled:
		return "cancelled"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// TransitionEvent describes one step of a node's state machine.
type TransitionEvent struct {
	Type   EventType
	NodeID int
	Path   string
	// State is the node's state right after the event.
	State State
	// BuildID distinguishes events from different builds, whose node
	// identities overlap.
	BuildID uuid.UUID
}

// EventSink receives transition events. When set on a Tree, every state
// change is forwarded synchronously.
type EventSink interface {
	Emit(event TransitionEvent)
}

// EventLog is an EventSink that records events in order.
type EventLog struct {
	Events []TransitionEvent
}

// Emit appends event to the log.
func (l *EventLog) Emit(event TransitionEvent) {
	l.Events = append(l.Events, event)
}

// Reset clears the log.
func (l *EventLog) Reset() {
	l.Events = l.Events[:0]
}

// For returns the event types recorded for path, in order.
func (l *EventLog) For(path string) []EventType {
	var out []EventType
	for _, e := range l.Events {
		if e.Path == path {
			out = append(out, e.Type)
		}
	}
	return out
}

// Count returns how many events of typ were recorded for path.
func (l *EventLog) Count(path string, typ EventType) int {
	n := 0
	for _, e := range l.Events {
		if e.Path == path && e.Type == typ {
			n++
		}
	}
	return n
}
