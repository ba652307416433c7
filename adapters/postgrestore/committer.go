package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// Committer saves tracked entities in a single database transaction.
type Committer struct {
	db *gorm.DB
}

func NewCommitter(db *gorm.DB) *Committer {
	return &Committer{db: db}
}

// Commit inserts new entities and updates existing ones in tracking order.
// Generated ids and timestamps are copied back to the entities only once the
// transaction has committed.
func (s *Committer) Commit(ctx context.Context, entities []domain.Entity) (int64, error) {
	var (
		affected int64
		apply    []func()
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entities {
			n, fn, err := s.save(tx, e)
			if err != nil {
				return err
			}

			affected += n
			apply = append(apply, fn)
		}

		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}

	for _, fn := range apply {
		fn()
	}

	return affected, nil
}

func (s *Committer) save(tx *gorm.DB, e domain.Entity) (int64, func(), error) {
	switch entity := e.(type) {
	case *customer.Customer:
		return s.saveCustomer(tx, entity)
	case *customer.Transaction:
		return s.saveTransaction(tx, entity)
	default:
		return 0, nil, fmt.Errorf("unsupported entity %T", e)
	}
}

func (s *Committer) saveCustomer(tx *gorm.DB, c *customer.Customer) (int64, func(), error) {
	schema := newCustomerSchema(c)

	if c.IsNew() {
		result := tx.Create(schema)
		if result.Error != nil {
			return 0, nil, result.Error
		}

		return result.RowsAffected, func() {
			c.CreatedAt = schema.CreatedAt
			c.UpdatedAt = schema.UpdatedAt
		}, nil
	}

	result := tx.Model(&CustomerSchema{ID: c.ID}).Updates(map[string]interface{}{
		"name":       schema.Name,
		"email":      schema.Email,
		"mobile":     schema.Mobile,
		"updated_at": gorm.Expr("NOW()"),
	})
	if result.Error != nil {
		return 0, nil, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, nil, customer.ErrCustomerNotFound
	}

	return result.RowsAffected, func() {}, nil
}

func (s *Committer) saveTransaction(tx *gorm.DB, t *customer.Transaction) (int64, func(), error) {
	schema := newTransactionSchema(t)

	if t.IsNew() {
		result := tx.Create(schema)
		if result.Error != nil {
			return 0, nil, result.Error
		}

		return result.RowsAffected, func() {
			t.ID = schema.ID
			t.CreatedAt = schema.CreatedAt
			t.UpdatedAt = schema.UpdatedAt
		}, nil
	}

	result := tx.Model(&TransactionSchema{ID: t.ID}).Updates(map[string]interface{}{
		"transaction_date": schema.Date,
		"amount":           schema.Amount,
		"currency_code":    schema.CurrencyCode,
		"status":           schema.Status,
		"updated_at":       gorm.Expr("NOW()"),
	})
	if result.Error != nil {
		return 0, nil, result.Error
	}

	return result.RowsAffected, func() {}, nil
}

func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", customer.ErrCustomerAlreadyExists, pqErr.Detail)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, pqErr.Detail)
	}

	return fmt.Errorf("unexpected error: %w", err)
}
