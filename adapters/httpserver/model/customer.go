package model

import (
	"errors"

	"github.com/SeaCloudHub/enquiry/pkg/validation"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount the NUMERIC(12,2) amount column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

var (
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrAmountPrecision   = errors.New("amount must have at most two decimals")
	ErrAmountTooLarge    = errors.New("amount must not exceed 9999999999.99")
)

type InquiryRequest struct {
	CustomerID string `query:"CustomerId" mod:"trim" validate:"omitempty,number,max=10"`
	Email      string `query:"Email" mod:"trim" validate:"omitempty,email,max=25"`
} // @name model.InquiryRequest

func (r *InquiryRequest) Validate() error {
	return validation.Validate().Struct(r)
}

func (r *InquiryRequest) IsEmpty() bool {
	return r.CustomerID == "" && r.Email == ""
}

type CreateTransactionRequest struct {
	Date         string `json:"transaction_date" mod:"trim" validate:"required,datetime=02/01/06 15:04"`
	Amount       string `json:"amount" mod:"trim" validate:"required,numeric"`
	CurrencyCode string `json:"currency_code" mod:"trim,ucase" validate:"required,iso4217"`
	Status       string `json:"status" mod:"trim" validate:"required,oneof=Success Failed Canceled"`
} // @name model.CreateTransactionRequest

func (r *CreateTransactionRequest) Validate() error {
	if err := validation.Validate().Struct(r); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return err
	}

	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}

	if amount.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}

	return nil
}

type CreateCustomerRequest struct {
	CustomerID   uint64                     `json:"id" validate:"required,min=1,max=9999999999"`
	Name         string                     `json:"name" mod:"trim" validate:"required,max=30"`
	Email        string                     `json:"email" mod:"trim" validate:"required,email,max=25"`
	Mobile       string                     `json:"mobile" mod:"trim" validate:"omitempty,number,len=10"`
	Transactions []CreateTransactionRequest `json:"transactions" mod:"dive" validate:"omitempty,dive"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate() error {
	if err := validation.Validate().Struct(r); err != nil {
		return err
	}

	for i := range r.Transactions {
		if err := r.Transactions[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

type ChangeContactRequest struct {
	Email  string `json:"email" mod:"trim" validate:"required,email,max=25"`
	Mobile string `json:"mobile" mod:"trim" validate:"omitempty,number,len=10"`
} // @name model.ChangeContactRequest

func (r *ChangeContactRequest) Validate() error {
	return validation.Validate().Struct(r)
}

type TransactionResponse struct {
	ID              uint64 `json:"id"`
	TransactionDate string `json:"transaction_date"`
	Amount          string `json:"amount"`
	CurrencyCode    string `json:"currency_code"`
	Status          string `json:"status"`
} // @name model.TransactionResponse

type CustomerResponse struct {
	ID           uint64                `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Mobile       string                `json:"mobile"`
	Transactions []TransactionResponse `json:"transactions"`
} // @name model.CustomerResponse

type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	NextCursor string             `json:"next_cursor,omitempty"`
} // @name model.ListCustomersResponse
