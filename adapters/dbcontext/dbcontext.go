// Package dbcontext implements the unit of work used by every write: entities
// are tracked while they are mutated, saved together, and their domain events
// are dispatched once the save has been committed.
package dbcontext

import (
	"context"
	"fmt"
	"reflect"

	"github.com/SeaCloudHub/enquiry/domain"
)

// Committer applies the tracked entities to the store as one unit of work and
// returns the number of affected rows.
type Committer interface {
	Commit(ctx context.Context, entities []domain.Entity) (int64, error)
}

// DispatchError is returned by SaveChanges when the commit succeeded but a
// consumer failed to handle one of the drained events.
type DispatchError struct {
	Event domain.BaseDomainEvent
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s: %v", e.Event.EventName(), e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// DBContext is one unit of work. It is not safe for concurrent use; create one
// per request or per operation.
type DBContext struct {
	committer  Committer
	dispatcher domain.EventDispatcher

	tracked []domain.Entity
	index   map[domain.Entity]struct{}
}

func New(committer Committer, dispatcher domain.EventDispatcher) *DBContext {
	return &DBContext{
		committer:  committer,
		dispatcher: dispatcher,
		index:      make(map[domain.Entity]struct{}),
	}
}

// Track adds entities to the unit of work in the order given. Tracking the
// same entity twice keeps its first position. Nil entities, typed or not, are
// ignored.
func (c *DBContext) Track(entities ...domain.Entity) {
	for _, e := range entities {
		if isNil(e) {
			continue
		}

		if _, ok := c.index[e]; ok {
			continue
		}

		c.index[e] = struct{}{}
		c.tracked = append(c.tracked, e)
	}
}

func (c *DBContext) Tracked() []domain.Entity {
	entities := make([]domain.Entity, len(c.tracked))
	copy(entities, c.tracked)

	return entities
}

// SaveChanges commits the tracked entities and then dispatches their pending
// events, entity by entity in tracking order and event by event in enqueue
// order. Each entity's queue is drained right before its events are
// dispatched.
//
// A commit error is returned as is, with a zero count, and leaves every queue
// untouched. A dispatch error stops the loop. It is not returned bare: it is
// wrapped in a *DispatchError carrying the failing event, together with the
// affected row count, so callers can tell a persisted write from a failed
// one with errors.As while errors.Is still reaches the listener error.
// Entities before the failing one are drained, the failing one is drained,
// the rest keep their events. In both cases the entities stay tracked so the
// caller can call SaveChanges again.
func (c *DBContext) SaveChanges(ctx context.Context) (int64, error) {
	affected, err := c.committer.Commit(ctx, c.Tracked())
	if err != nil {
		return 0, err
	}

	var withEvents []domain.Entity
	for _, e := range c.tracked {
		if e.HasPendingEvents() {
			withEvents = append(withEvents, e)
		}
	}

	for _, e := range withEvents {
		for _, event := range e.DrainEvents() {
			if err := c.dispatcher.Dispatch(ctx, event); err != nil {
				return affected, &DispatchError{Event: event, Err: err}
			}
		}
	}

	c.tracked = nil
	c.index = make(map[domain.Entity]struct{})

	return affected, nil
}

func isNil(e domain.Entity) bool {
	if e == nil {
		return true
	}

	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}
