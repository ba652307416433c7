package postgrestore

import (
	"time"

	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/shopspring/decimal"
)

type CustomerSchema struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" db:"id"`
	Name      string    `gorm:"column:name" db:"name"`
	Email     string    `gorm:"column:email" db:"email"`
	Mobile    string    `gorm:"column:mobile" db:"mobile"`
	CreatedAt time.Time `gorm:"column:created_at" db:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" db:"updated_at"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func newCustomerSchema(c *customer.Customer) *CustomerSchema {
	return &CustomerSchema{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Mobile:    c.Mobile,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *CustomerSchema) ToDomainCustomer() *customer.Customer {
	if s == nil {
		return nil
	}

	return &customer.Customer{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Mobile:       s.Mobile,
		Transactions: []*customer.Transaction{},
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type TransactionSchema struct {
	ID           uint64          `gorm:"column:id;primaryKey" db:"id"`
	CustomerID   uint64          `gorm:"column:customer_id" db:"customer_id"`
	Date         time.Time       `gorm:"column:transaction_date" db:"transaction_date"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(12,2)" db:"amount"`
	CurrencyCode string          `gorm:"column:currency_code" db:"currency_code"`
	Status       string          `gorm:"column:status" db:"status"`
	CreatedAt    time.Time       `gorm:"column:created_at" db:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at" db:"updated_at"`
}

func (TransactionSchema) TableName() string {
	return "transactions"
}

func newTransactionSchema(t *customer.Transaction) *TransactionSchema {
	return &TransactionSchema{
		ID:           t.ID,
		CustomerID:   t.CustomerID,
		Date:         t.Date,
		Amount:       t.Amount,
		CurrencyCode: t.CurrencyCode,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (s *TransactionSchema) ToDomainTransaction() *customer.Transaction {
	if s == nil {
		return nil
	}

	return &customer.Transaction{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		Date:         s.Date.UTC(),
		Amount:       s.Amount,
		CurrencyCode: s.CurrencyCode,
		Status:       customer.Status(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
