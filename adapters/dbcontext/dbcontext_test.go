package dbcontext_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SeaCloudHub/enquiry/adapters/dbcontext"
	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	domain.Events
	name string
}

func newEntity(name string, events ...string) *entity {
	e := &entity{name: name}
	for _, ev := range events {
		e.Enqueue(event(ev))
	}

	return e
}

type event string

func (e event) EventName() string {
	return string(e)
}

type committer struct {
	affected int64
	err      error
	calls    int
	seen     []domain.Entity
	// pending captures whether dispatching had started when Commit ran.
	dispatcher *dispatcher
	dispatched int
}

func (c *committer) Commit(_ context.Context, entities []domain.Entity) (int64, error) {
	c.calls++
	c.seen = entities
	if c.dispatcher != nil {
		c.dispatched = len(c.dispatcher.events)
	}

	if c.err != nil {
		return 0, c.err
	}

	return c.affected, nil
}

type dispatcher struct {
	events []domain.BaseDomainEvent
	failOn string
	err    error
}

func (d *dispatcher) Dispatch(_ context.Context, e domain.BaseDomainEvent) error {
	if d.failOn != "" && e.EventName() == d.failOn {
		return d.err
	}

	d.events = append(d.events, e)

	return nil
}

func names(events []domain.BaseDomainEvent) []string {
	var result []string
	for _, e := range events {
		result = append(result, e.EventName())
	}

	return result
}

func TestSaveChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("it should dispatch events in tracking and enqueue order", func(t *testing.T) {
		d := &dispatcher{}
		c := &committer{affected: 3, dispatcher: d}
		db := dbcontext.New(c, d)

		a := newEntity("a", "a1", "a2", "a3")
		b := newEntity("b", "b1")
		db.Track(a, b)

		affected, err := db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), affected)
		assert.Equal(t, []string{"a1", "a2", "a3", "b1"}, names(d.events))
		assert.Equal(t, 0, c.dispatched, "nothing is dispatched before the commit")
	})

	t.Run("it should not dispatch for entities without events", func(t *testing.T) {
		d := &dispatcher{}
		db := dbcontext.New(&committer{affected: 2}, d)

		db.Track(newEntity("a"), newEntity("b"))

		affected, err := db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)
		assert.Empty(t, d.events)
	})

	t.Run("it should return the store result when nothing is tracked", func(t *testing.T) {
		d := &dispatcher{}
		c := &committer{affected: 0}
		db := dbcontext.New(c, d)

		affected, err := db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		assert.Equal(t, 1, c.calls)
		assert.Empty(t, d.events)
	})

	t.Run("it should leave every queue empty after a successful commit", func(t *testing.T) {
		d := &dispatcher{}
		db := dbcontext.New(&committer{affected: 2}, d)

		a := newEntity("a", "a1")
		b := newEntity("b", "b1", "b2")
		db.Track(a, b)

		_, err := db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.False(t, a.HasPendingEvents())
		assert.False(t, b.HasPendingEvents())
		assert.Empty(t, db.Tracked())
	})

	t.Run("it should not dispatch nor drain when the commit fails", func(t *testing.T) {
		storeErr := errors.New("duplicate key value violates unique constraint")
		d := &dispatcher{}
		db := dbcontext.New(&committer{err: storeErr}, d)

		a := newEntity("a", "a1", "a2")
		b := newEntity("b", "b1")
		db.Track(a, b)

		affected, err := db.SaveChanges(ctx)

		assert.Same(t, storeErr, err)
		assert.Equal(t, int64(0), affected)
		assert.Empty(t, d.events)
		assert.Equal(t, []domain.BaseDomainEvent{event("a1"), event("a2")}, a.PendingEvents())
		assert.Equal(t, []domain.BaseDomainEvent{event("b1")}, b.PendingEvents())
		assert.Len(t, db.Tracked(), 2)
	})

	t.Run("it should stop at the first dispatch failure", func(t *testing.T) {
		consumerErr := errors.New("consumer down")
		d := &dispatcher{failOn: "b1", err: consumerErr}
		db := dbcontext.New(&committer{affected: 3}, d)

		a := newEntity("a", "a1")
		b := newEntity("b", "b1", "b2")
		c := newEntity("c", "c1")
		db.Track(a, b, c)

		affected, err := db.SaveChanges(ctx)

		assert.Equal(t, int64(3), affected, "the commit already happened")
		require.Error(t, err)
		assert.ErrorIs(t, err, consumerErr)

		var dispatchErr *dbcontext.DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		assert.Equal(t, event("b1"), dispatchErr.Event)

		assert.Equal(t, []string{"a1"}, names(d.events))
		assert.False(t, a.HasPendingEvents(), "processed entities are drained")
		assert.False(t, b.HasPendingEvents(), "the failing entity is drained before dispatch")
		assert.Equal(t, []domain.BaseDomainEvent{event("c1")}, c.PendingEvents(), "later entities keep their events")
		assert.Len(t, db.Tracked(), 3)
	})

	t.Run("it should only dispatch what is left on retry", func(t *testing.T) {
		consumerErr := errors.New("consumer down")
		d := &dispatcher{failOn: "b1", err: consumerErr}
		c := &committer{affected: 2}
		db := dbcontext.New(c, d)

		a := newEntity("a", "a1")
		b := newEntity("b", "b1")
		cc := newEntity("c", "c1")
		db.Track(a, b, cc)

		_, err := db.SaveChanges(ctx)
		require.Error(t, err)

		d.failOn = ""
		_, err = db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, c.calls)
		assert.Equal(t, []string{"a1", "c1"}, names(d.events))
	})

	t.Run("it should track an entity once", func(t *testing.T) {
		d := &dispatcher{}
		c := &committer{affected: 1}
		db := dbcontext.New(c, d)

		a := newEntity("a", "a1")
		b := newEntity("b", "b1")
		db.Track(a, b, a, nil)

		_, err := db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, []domain.Entity{a, b}, c.seen)
		assert.Equal(t, []string{"a1", "b1"}, names(d.events))
	})

	t.Run("it should ignore typed nil entities", func(t *testing.T) {
		d := &dispatcher{}
		c := &committer{affected: 1}
		db := dbcontext.New(c, d)

		cus := customer.New(123456, "A", "a@domain.com", "")
		db.Track((*customer.Customer)(nil), cus, (*customer.Transaction)(nil))

		require.NotPanics(t, func() {
			_, err := db.SaveChanges(ctx)
			require.NoError(t, err)
		})
		assert.Equal(t, []domain.Entity{cus}, c.seen)
		assert.Equal(t, []string{customer.CustomerCreatedEventName}, names(d.events))
	})

	t.Run("it should dispatch events enqueued after a commit on the next one", func(t *testing.T) {
		d := &dispatcher{}
		db := dbcontext.New(&committer{affected: 1}, d)

		a := newEntity("a", "a1")
		db.Track(a)
		_, err := db.SaveChanges(ctx)
		require.NoError(t, err)

		a.Enqueue(event("a2"))
		a.Enqueue(event("a3"))
		db.Track(a)
		_, err = db.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2", "a3"}, names(d.events))
	})
}

func TestSaveChangesCustomerScenario(t *testing.T) {
	run := func() []string {
		d := &dispatcher{}
		db := dbcontext.New(&committer{affected: 2}, d)

		c := customer.New(123456, "A", "a@domain.com", "")
		tx := c.AddTransaction(time.Now(), decimal.NewFromInt(10), "USD", customer.StatusSuccess)
		db.Track(c, tx)

		_, err := db.SaveChanges(context.Background())
		require.NoError(t, err)

		return names(d.events)
	}

	first := run()
	assert.Equal(t, []string{customer.CustomerCreatedEventName, customer.TransactionAddedEventName}, first)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run(), "order is stable for the same tracked set")
	}
}
