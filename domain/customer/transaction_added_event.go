package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

const TransactionAddedEventName = "TransactionAdded"

type TransactionAddedEvent struct {
	CustomerID   uint64          `json:"customer_id"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
	Status       Status          `json:"status"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

func NewTransactionAddedEvent(t *Transaction) TransactionAddedEvent {
	return TransactionAddedEvent{
		CustomerID:   t.CustomerID,
		Date:         t.Date,
		Amount:       t.Amount,
		CurrencyCode: t.CurrencyCode,
		Status:       t.Status,
		OccurredAt:   time.Now().UTC(),
	}
}

func (e TransactionAddedEvent) EventName() string {
	return TransactionAddedEventName
}
