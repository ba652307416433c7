package customer

import (
	"strings"
	"time"

	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSuccess  Status = "Success"
	StatusFailed   Status = "Failed"
	StatusCanceled Status = "Canceled"
)

var AvailableStatuses = []Status{StatusSuccess, StatusFailed, StatusCanceled}

func (s Status) IsValid() bool {
	for _, status := range AvailableStatuses {
		if s == status {
			return true
		}
	}

	return false
}

type Transaction struct {
	domain.Events `json:"-"`

	ID           uint64          `json:"id"`
	CustomerID   uint64          `json:"customer_id"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
} // @name customer.Transaction

func newTransaction(customerID uint64, date time.Time, amount decimal.Decimal, currencyCode string, status Status) *Transaction {
	t := &Transaction{
		CustomerID:   customerID,
		Date:         date.UTC(),
		Amount:       amount.Round(2),
		CurrencyCode: strings.ToUpper(currencyCode),
		Status:       status,
	}

	t.Enqueue(NewTransactionAddedEvent(t))

	return t
}

func (t *Transaction) IsNew() bool {
	return t.ID == 0
}
