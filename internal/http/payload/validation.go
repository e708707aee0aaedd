package payload

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var (
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashPattern  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

type DecodeValidator struct{}

// DecodeJSONPayload decodes the body into object and runs its Validate method
// when it has one.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	if err := DecodePayload(r, object); err != nil {
		return err
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// positive rejects zero and negative amounts.
var positive = validation.By(func(value any) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_decimal", "must be a decimal")
	}
	if !amount.IsPositive() {
		return validation.NewError("validation_positive", "must be greater than zero")
	}
	return nil
})

var notNegative = validation.By(func(value any) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_decimal", "must be a decimal")
	}
	if amount.IsNegative() {
		return validation.NewError("validation_not_negative", "must not be negative")
	}
	return nil
})
