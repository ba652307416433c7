package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeaCloudHub/enquiry/adapters/dbcontext"
	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/customer"
)

// CustomerService runs every write through its own persistence context so the
// recorded domain events are dispatched only after the commit.
type CustomerService struct {
	committer  dbcontext.Committer
	dispatcher domain.EventDispatcher
	store      customer.Store
}

func NewCustomerService(committer dbcontext.Committer, dispatcher domain.EventDispatcher, store customer.Store) *CustomerService {
	return &CustomerService{
		committer:  committer,
		dispatcher: dispatcher,
		store:      store,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, in customer.NewCustomer) (*customer.Customer, error) {
	c := customer.New(in.ID, in.Name, in.Email, in.Mobile)
	for _, t := range in.Transactions {
		c.AddTransaction(t.Date, t.Amount, t.CurrencyCode, t.Status)
	}

	dbc := dbcontext.New(s.committer, s.dispatcher)
	dbc.Track(c)
	for _, t := range c.Transactions {
		dbc.Track(t)
	}

	if err := s.save(ctx, dbc); err != nil {
		return persisted(c, err)
	}

	return c, nil
}

func (s *CustomerService) AddTransaction(ctx context.Context, customerID uint64, in customer.NewTransaction) (*customer.Transaction, error) {
	c, err := s.store.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	t := c.AddTransaction(in.Date, in.Amount, in.CurrencyCode, in.Status)

	dbc := dbcontext.New(s.committer, s.dispatcher)
	dbc.Track(t)

	if err := s.save(ctx, dbc); err != nil {
		return persisted(t, err)
	}

	return t, nil
}

func (s *CustomerService) ChangeContact(ctx context.Context, customerID uint64, email, mobile string) (*customer.Customer, error) {
	c, err := s.store.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	c.ChangeContact(email, mobile)

	dbc := dbcontext.New(s.committer, s.dispatcher)
	dbc.Track(c)

	if err := s.save(ctx, dbc); err != nil {
		return persisted(c, err)
	}

	return c, nil
}

func (s *CustomerService) save(ctx context.Context, dbc *dbcontext.DBContext) error {
	_, err := dbc.SaveChanges(ctx)
	if err == nil {
		return nil
	}

	var dispatchErr *dbcontext.DispatchError
	if errors.As(err, &dispatchErr) {
		return err
	}

	if errors.Is(err, customer.ErrCustomerAlreadyExists) || errors.Is(err, customer.ErrCustomerNotFound) {
		return err
	}

	return fmt.Errorf("save changes: %w", err)
}

// persisted keeps the entity when the write was committed and only event
// dispatch failed.
func persisted[T any](entity *T, err error) (*T, error) {
	var dispatchErr *dbcontext.DispatchError
	if errors.As(err, &dispatchErr) {
		return entity, err
	}

	return nil, err
}
