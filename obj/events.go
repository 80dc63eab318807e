package obj

// EventKind identifies a gameplay effect that presentation layers react to.
type EventKind string

const (
	EventJumpStarted    EventKind = "jump_started"
	EventLanded         EventKind = "landed"
	EventBlockDestroyed EventKind = "block_destroyed"
	EventCoinCollected  EventKind = "coin_collected"
	EventRespawned      EventKind = "respawned"
)

// Event is one effect notification. Source is the emitting player's index,
// or -1 when no player is involved.
type Event struct {
	Kind   EventKind
	Source int
	X, Y   float64
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

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
