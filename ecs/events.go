package ecs

// EventType identifies world events consumed outside the scheduler.
type EventType string

const (
	// EventSessionEnded fires once the post-death delay has elapsed.
	EventSessionEnded EventType = "session_ended"
	// EventPlayerDied fires on the frame the player dies.
	EventPlayerDied EventType = "player_died"
	// EventPlayerJumped fires for every jump impulse.
	EventPlayerJumped EventType = "player_jumped"
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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
