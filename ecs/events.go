package ecs

// EventType names a presentation event consumed by audio/animation
// collaborators.
type EventType string

const (
	EventWalkStart         EventType = "walk_start"
	EventWalkStop          EventType = "walk_stop"
	EventJump              EventType = "jump"
	EventBarrelSpawn       EventType = "barrel_spawn"
	EventHazardTouch       EventType = "hazard_touch"
	EventBarrelHit         EventType = "barrel_hit"
	EventGoalReached       EventType = "goal_reached"
	EventOutcomeTransition EventType = "outcome_transition"
	EventSessionRestart    EventType = "session_restart"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := make([]Event, len(q.items))
	copy(out, q.items)
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
