package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	conform  *mold.Transformer
	onceInit sync.Once
)

func setup() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	conform = modifiers.New()
}

func Validate() *validator.Validate {
	onceInit.Do(setup)

	return validate
}

// Conform applies the `mod` tags of s, e.g. `mod:"trim"`.
func Conform(ctx context.Context, s interface{}) error {
	onceInit.Do(setup)

	return conform.Struct(ctx, s)
}

// FailedFields returns the struct field names that failed validation.
func FailedFields(err error) []string {
	var fields []string

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	for _, fe := range verrs {
		fields = append(fields, fe.StructField())
	}

	return fields
}
