package model_test

import (
	"testing"

	"github.com/SeaCloudHub/enquiry/adapters/httpserver/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateTransactionRequestValidateAmount(t *testing.T) {
	tests := []struct {
		amount string
		err    error
	}{
		{amount: "1234.5"},
		{amount: "9999999999.99"},
		{amount: "0", err: model.ErrAmountNotPositive},
		{amount: "1.234", err: model.ErrAmountPrecision},
		{amount: "10000000000", err: model.ErrAmountTooLarge},
		{amount: "123456789012345.50", err: model.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			req := model.CreateTransactionRequest{
				Date:         "28/02/18 21:34",
				Amount:       tt.amount,
				CurrencyCode: "USD",
				Status:       "Success",
			}

			err := req.Validate()

			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
