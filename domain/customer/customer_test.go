package customer_test

import (
	"testing"
	"time"

	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := customer.New(123456, "Customer A", "a@domain.com", "0123456789")

	assert.True(t, c.IsNew())
	require.True(t, c.HasPendingEvents())

	events := c.PendingEvents()
	require.Len(t, events, 1)

	created, ok := events[0].(customer.CustomerCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(123456), created.CustomerID)
	assert.Equal(t, "a@domain.com", created.Email)
	assert.Equal(t, customer.CustomerCreatedEventName, created.EventName())
}

func TestAddTransaction(t *testing.T) {
	c := customer.New(123456, "Customer A", "a@domain.com", "")
	_ = c.DrainEvents()

	date := time.Date(2018, 2, 28, 21, 34, 0, 0, time.FixedZone("ICT", 7*3600))
	tx := c.AddTransaction(date, decimal.RequireFromString("1234.567"), "usd", customer.StatusSuccess)

	assert.False(t, c.HasPendingEvents(), "adding a transaction records nothing on the customer")
	assert.Len(t, c.Transactions, 1)
	assert.Same(t, tx, c.Transactions[0])

	assert.True(t, tx.IsNew())
	assert.Equal(t, uint64(123456), tx.CustomerID)
	assert.Equal(t, "USD", tx.CurrencyCode)
	assert.Equal(t, "1234.57", tx.Amount.StringFixed(2))
	assert.Equal(t, time.UTC, tx.Date.Location())

	events := tx.PendingEvents()
	require.Len(t, events, 1)
	added, ok := events[0].(customer.TransactionAddedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(123456), added.CustomerID)
	assert.Equal(t, customer.StatusSuccess, added.Status)
}

func TestChangeContact(t *testing.T) {
	t.Run("it should record the old email", func(t *testing.T) {
		c := customer.New(1, "A", "old@domain.com", "")
		_ = c.DrainEvents()

		c.ChangeContact("new@domain.com", "0123456789")

		events := c.DrainEvents()
		require.Len(t, events, 1)
		changed := events[0].(customer.CustomerContactChangedEvent)
		assert.Equal(t, "old@domain.com", changed.OldEmail)
		assert.Equal(t, "new@domain.com", changed.Email)
		assert.Equal(t, "0123456789", changed.Mobile)
		assert.Equal(t, "new@domain.com", c.Email)
	})

	t.Run("it should do nothing when nothing changed", func(t *testing.T) {
		c := customer.New(1, "A", "a@domain.com", "0123456789")
		_ = c.DrainEvents()

		c.ChangeContact("a@domain.com", "0123456789")

		assert.False(t, c.HasPendingEvents())
	})
}

func TestStatusIsValid(t *testing.T) {
	tests := []struct {
		status customer.Status
		want   bool
	}{
		{customer.StatusSuccess, true},
		{customer.StatusFailed, true},
		{customer.StatusCanceled, true},
		{"success", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.want {
			t.Errorf("Status(%q).IsValid() = %v; want %v", tt.status, got, tt.want)
		}
	}
}

func TestMatchesEmail(t *testing.T) {
	c := customer.New(1, "A", "User2@Domain.com", "")

	assert.True(t, c.MatchesEmail("user2@domain.com"))
	assert.False(t, c.MatchesEmail("user3@domain.com"))
}
