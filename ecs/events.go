package ecs

// EventType names a world event.
type EventType string

const (
	// EventOverheated fires when a thrust attempt locks the jetpack out.
	EventOverheated EventType = "overheated"
	// EventCooled fires when an overheated jetpack refills and unlocks.
	EventCooled EventType = "cooled"
	// EventBounce fires when a boundary reverses a velocity component.
	EventBounce EventType = "bounce"
)

// Axis identifies the velocity component a bounce reversed.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Event is a world event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Axis   Axis
}

func (e Event) String() string {
	if e.Type == EventBounce {
		return string(e.Type) + ":" + e.Axis.String()
	}
	return string(e.Type)
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
