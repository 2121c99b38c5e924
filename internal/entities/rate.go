package entities

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// BaseCurrency is the implicit pivot of every rate: rates are units per 1 USD.
const BaseCurrency = "USD"

// ExchangeRate is a single entry of the rate table.
type ExchangeRate struct {
	Code string  `validate:"required,len=3,alpha,uppercase"`
	Rate float64 `validate:"gt=0"`
}

// CurrencyRate is an ExchangeRate resolved with its display name.
type CurrencyRate struct {
	ExchangeRate
	Name string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func NewRate(code string, rate float64) (*ExchangeRate, error) {
	r := &ExchangeRate{
		Code: code,
		Rate: rate,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate reports ErrInvalidArgument when the code is malformed or the rate is not positive.
func (r ExchangeRate) Validate() error {
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Rate":
				return errors.Wrap(ErrInvalidArgument, "exchange rate must be positive")
			case "Code":
				return errors.Wrapf(ErrInvalidArgument, "malformed currency code %q", r.Code)
			}
		}
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}

	return nil
}
