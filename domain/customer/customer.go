package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/pkg/pagination"
	"github.com/shopspring/decimal"
)

const MaxID uint64 = 9_999_999_999

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrNoInquiryCriteria     = errors.New("no inquiry criteria")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidEmail          = errors.New("invalid email")
)

type Store interface {
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context, paging *pagination.Paging) ([]Customer, error)
}

type Service interface {
	CreateCustomer(ctx context.Context, c NewCustomer) (*Customer, error)
	AddTransaction(ctx context.Context, customerID uint64, t NewTransaction) (*Transaction, error)
	ChangeContact(ctx context.Context, customerID uint64, email, mobile string) (*Customer, error)
}

type NewCustomer struct {
	ID           uint64
	Name         string
	Email        string
	Mobile       string
	Transactions []NewTransaction
}

type NewTransaction struct {
	Date         time.Time
	Amount       decimal.Decimal
	CurrencyCode string
	Status       Status
}

type Customer struct {
	domain.Events `json:"-"`

	ID           uint64         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Mobile       string         `json:"mobile"`
	Transactions []*Transaction `json:"transactions"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
} // @name customer.Customer

// New returns a customer that has not been saved yet and records
// CustomerCreated on it.
func New(id uint64, name, email, mobile string) *Customer {
	c := &Customer{
		ID:     id,
		Name:   name,
		Email:  email,
		Mobile: mobile,
	}

	c.Enqueue(NewCustomerCreatedEvent(c.ID, c.Name, c.Email))

	return c
}

func (c *Customer) IsNew() bool {
	return c.CreatedAt.IsZero()
}

// MatchesEmail compares emails the same way the stores look them up.
func (c *Customer) MatchesEmail(email string) bool {
	return strings.EqualFold(c.Email, email)
}

func (c *Customer) ChangeContact(email, mobile string) {
	if c.Email == email && c.Mobile == mobile {
		return
	}

	oldEmail := c.Email
	c.Email = email
	c.Mobile = mobile

	c.Enqueue(NewCustomerContactChangedEvent(c.ID, oldEmail, email, mobile))
}

// AddTransaction attaches a new transaction to the customer. The
// TransactionAdded event is recorded on the transaction itself, so the
// transaction has to be tracked for it to be dispatched.
func (c *Customer) AddTransaction(date time.Time, amount decimal.Decimal, currencyCode string, status Status) *Transaction {
	t := newTransaction(c.ID, date, amount, currencyCode, status)
	c.Transactions = append(c.Transactions, t)

	return t
}
