package event

import (
	"context"
	"slices"
	"sync"

	"github.com/SeaCloudHub/enquiry/domain"
)

type eventDispatcher struct {
	listeners map[string][]domain.EventListener
	mutex     sync.RWMutex
}

func NewEventDispatcher() *eventDispatcher {
	return &eventDispatcher{}
}

// Dispatch calls the listeners registered for the event in registration order
// and stops at the first error.
func (ed *eventDispatcher) Dispatch(ctx context.Context, event domain.BaseDomainEvent) error {
	ed.mutex.RLock()
	listeners := slices.Clone(ed.listeners[event.EventName()])
	ed.mutex.RUnlock()

	for _, listener := range listeners {
		if err := listener(ctx, event); err != nil {
			return err
		}
	}

	return nil
}

func (ed *eventDispatcher) Register(eventName string, listener domain.EventListener) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()
	if ed.listeners == nil {
		ed.listeners = make(map[string][]domain.EventListener)
	}
	ed.listeners[eventName] = append(ed.listeners[eventName], listener)
}
