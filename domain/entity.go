package domain

// Entity is anything that records domain events while it is being mutated.
// The persistence context drains the events once the entity has been saved.
type Entity interface {
	Enqueue(event BaseDomainEvent)
	HasPendingEvents() bool
	PendingEvents() []BaseDomainEvent
	DrainEvents() []BaseDomainEvent
}

// Events is embedded by entities to implement Entity.
// It is not safe for concurrent use.
type Events struct {
	pending []BaseDomainEvent
}

func (e *Events) Enqueue(event BaseDomainEvent) {
	e.pending = append(e.pending, event)
}

func (e *Events) HasPendingEvents() bool {
	return len(e.pending) > 0
}

// PendingEvents returns a copy of the queue without clearing it.
func (e *Events) PendingEvents() []BaseDomainEvent {
	if len(e.pending) == 0 {
		return nil
	}

	events := make([]BaseDomainEvent, len(e.pending))
	copy(events, e.pending)

	return events
}

func (e *Events) DrainEvents() []BaseDomainEvent {
	events := e.pending
	e.pending = nil

	return events
}
