package domain

import "context"

// EventDispatcher delivers one event to its consumers and returns once every
// consumer has handled it.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event BaseDomainEvent) error
}

type EventListener func(ctx context.Context, event BaseDomainEvent) error

type EventBus interface {
	EventDispatcher
	Register(eventName string, listener EventListener)
}
