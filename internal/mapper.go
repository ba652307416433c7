package internal

import (
	"github.com/SeaCloudHub/enquiry/adapters/httpserver/model"
	"github.com/SeaCloudHub/enquiry/domain/customer"
)

type Mapper interface {
	ToCustomerResponse(c *customer.Customer) model.CustomerResponse
	ToCustomerResponses(customers []customer.Customer) []model.CustomerResponse
	ToTransactionResponse(t *customer.Transaction) model.TransactionResponse

	ToNewCustomer(req model.CreateCustomerRequest) (customer.NewCustomer, error)
	ToNewTransaction(req model.CreateTransactionRequest) (customer.NewTransaction, error)
}
