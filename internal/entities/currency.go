package entities

const UnknownCurrencyName = "Unknown Currency"

var currencyNames = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"INR": "Indian Rupee",
	"AUD": "Australian Dollar",
	"CAD": "Canadian Dollar",
	"CNY": "Chinese Yuan",
	"CHF": "Swiss Franc",
	"MXN": "Mexican Peso",
}

// CurrencyName returns the display name of code, or UnknownCurrencyName.
func CurrencyName(code string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return UnknownCurrencyName
}

// DefaultRates returns a fresh copy of the seed rate table.
func DefaultRates() map[string]float64 {
	return map[string]float64{
		"USD": 1.00,
		"EUR": 0.93,
		"GBP": 0.79,
		"JPY": 151.50,
		"INR": 83.30,
		"AUD": 1.52,
		"CAD": 1.37,
		"CNY": 7.24,
		"CHF": 0.91,
		"MXN": 16.75,
	}
}
