package entities

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		rate    float64
		wantErr bool
	}{
		{name: "valid", code: "EUR", rate: 0.93},
		{name: "zero rate", code: "EUR", rate: 0, wantErr: true},
		{name: "negative rate", code: "EUR", rate: -5, wantErr: true},
		{name: "lowercase code", code: "eur", rate: 0.93, wantErr: true},
		{name: "short code", code: "EU", rate: 0.93, wantErr: true},
		{name: "digits in code", code: "E1R", rate: 0.93, wantErr: true},
		{name: "empty code", code: "", rate: 0.93, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRate(tt.code, tt.rate)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &ExchangeRate{Code: tt.code, Rate: tt.rate}, got)
		})
	}
}

func TestExchangeRate_Validate_Message(t *testing.T) {
	err := ExchangeRate{Code: "EUR", Rate: 0}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange rate must be positive")
}

func TestCurrencyName(t *testing.T) {
	assert.Equal(t, "US Dollar", CurrencyName("USD"))
	assert.Equal(t, "Mexican Peso", CurrencyName("MXN"))
	assert.Equal(t, UnknownCurrencyName, CurrencyName("XYZ"))
}

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates()
	require.Len(t, rates, 10)
	assert.Equal(t, 1.00, rates[BaseCurrency])
	assert.Equal(t, 151.50, rates["JPY"])

	for code, rate := range rates {
		assert.NoError(t, ExchangeRate{Code: code, Rate: rate}.Validate(), code)
		assert.NotEqual(t, UnknownCurrencyName, CurrencyName(code), code)
	}

	rates["EUR"] = 2
	assert.Equal(t, 0.93, DefaultRates()["EUR"], "seed must not be shared")
}
