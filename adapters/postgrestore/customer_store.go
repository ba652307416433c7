package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/pkg/pagination"
	"github.com/jmoiron/sqlx"
)

const (
	customerColumns    = `id, name, email, mobile, created_at, updated_at`
	transactionColumns = `id, customer_id, transaction_date, amount, currency_code, status, created_at, updated_at`
)

type CustomerStore struct {
	db *sqlx.DB
}

func NewCustomerStore(db *sqlx.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) GetByID(ctx context.Context, id uint64) (*customer.Customer, error) {
	return s.get(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

func (s *CustomerStore) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return s.get(ctx, `SELECT `+customerColumns+` FROM customers WHERE LOWER(email) = LOWER($1)`, email)
}

func (s *CustomerStore) get(ctx context.Context, query string, arg interface{}) (*customer.Customer, error) {
	var schema CustomerSchema
	if err := s.db.GetContext(ctx, &schema, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	c := schema.ToDomainCustomer()
	if err := s.attachTransactions(ctx, []*customer.Customer{c}); err != nil {
		return nil, err
	}

	return c, nil
}

type customerCursor struct {
	AfterID uint64 `json:"after_id"`
}

// List returns customers ordered by id. When paging is limited, NextCursor is
// set if more customers follow.
func (s *CustomerStore) List(ctx context.Context, paging *pagination.Paging) ([]customer.Customer, error) {
	var (
		schemas []CustomerSchema
		err     error
	)

	if !paging.IsPaged() {
		err = s.db.SelectContext(ctx, &schemas, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	} else {
		cursor, cerr := pagination.DecodeCursor[customerCursor](paging.Cursor)
		if cerr != nil {
			return nil, cerr
		}

		limit := paging.Limit
		if limit <= 0 {
			limit = 100
		}

		err = s.db.SelectContext(ctx, &schemas,
			`SELECT `+customerColumns+` FROM customers WHERE id > $1 ORDER BY id LIMIT $2`,
			cursor.AfterID, limit+1)

		if err == nil {
			paging.NextCursor = ""
			if int64(len(schemas)) > limit {
				schemas = schemas[:limit]
				paging.NextCursor = pagination.EncodeCursor(customerCursor{AfterID: schemas[limit-1].ID})
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(schemas))
	for i := range schemas {
		customers = append(customers, schemas[i].ToDomainCustomer())
	}

	if err := s.attachTransactions(ctx, customers); err != nil {
		return nil, err
	}

	result := make([]customer.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, *c)
	}

	return result, nil
}

func (s *CustomerStore) attachTransactions(ctx context.Context, customers []*customer.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	byID := make(map[uint64]*customer.Customer, len(customers))
	ids := make([]uint64, 0, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	query, args, err := sqlx.In(`SELECT `+transactionColumns+` FROM transactions
		WHERE customer_id IN (?) ORDER BY transaction_date, id`, ids)
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	var schemas []TransactionSchema
	if err := s.db.SelectContext(ctx, &schemas, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	for i := range schemas {
		if c, ok := byID[schemas[i].CustomerID]; ok {
			c.Transactions = append(c.Transactions, schemas[i].ToDomainTransaction())
		}
	}

	return nil
}
