package domain

// defaultCurrencies maps a country name to its currency code.
// Extend as new target countries show up in real trips.
var defaultCurrencies = map[string]string{
	"Australia":     "AUD",
	"United States": "USD",
	"Vietnam":       "VND",
	"Japan":         "JPY",
	"France":        "EUR",
	"Indonesia":     "IDR",
}

// DefaultCurrency returns the currency code for a country name.
// Unmapped countries fall back to "USD" — a UX default, not an error.
// Pure function: same input always yields the same output.
func DefaultCurrency(country string) string {
	if code, ok := defaultCurrencies[country]; ok {
		return code
	}
	return "USD"
}
