package services

import (
	"sync"
	"time"

	"github.com/SeaCloudHub/enquiry/adapters/httpserver/model"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/shopspring/decimal"
)

const TransactionDateLayout = "02/01/06 15:04"

var (
	mapperInstance *mapper
	onceMapper     sync.Once
)

type mapper struct{}

func NewMapperService() *mapper {
	onceMapper.Do(func() {
		mapperInstance = &mapper{}
	})
	return mapperInstance
}

func (s *mapper) ToCustomerResponse(c *customer.Customer) model.CustomerResponse {
	resp := model.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Mobile:       c.Mobile,
		Transactions: make([]model.TransactionResponse, 0, len(c.Transactions)),
	}

	for _, t := range c.Transactions {
		resp.Transactions = append(resp.Transactions, s.ToTransactionResponse(t))
	}

	return resp
}

func (s *mapper) ToCustomerResponses(customers []customer.Customer) []model.CustomerResponse {
	resp := make([]model.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, s.ToCustomerResponse(&customers[i]))
	}

	return resp
}

func (s *mapper) ToTransactionResponse(t *customer.Transaction) model.TransactionResponse {
	return model.TransactionResponse{
		ID:              t.ID,
		TransactionDate: t.Date.UTC().Format(TransactionDateLayout),
		Amount:          t.Amount.StringFixed(2),
		CurrencyCode:    t.CurrencyCode,
		Status:          string(t.Status),
	}
}

func (s *mapper) ToNewCustomer(req model.CreateCustomerRequest) (customer.NewCustomer, error) {
	nc := customer.NewCustomer{
		ID:     req.CustomerID,
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
	}

	for _, t := range req.Transactions {
		nt, err := s.ToNewTransaction(t)
		if err != nil {
			return customer.NewCustomer{}, err
		}
		nc.Transactions = append(nc.Transactions, nt)
	}

	return nc, nil
}

func (s *mapper) ToNewTransaction(req model.CreateTransactionRequest) (customer.NewTransaction, error) {
	date, err := time.ParseInLocation(TransactionDateLayout, req.Date, time.UTC)
	if err != nil {
		return customer.NewTransaction{}, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return customer.NewTransaction{}, err
	}

	return customer.NewTransaction{
		Date:         date,
		Amount:       amount,
		CurrencyCode: req.CurrencyCode,
		Status:       customer.Status(req.Status),
	}, nil
}
