package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Money is an amount in a specific currency, optionally converted to the
// trip's base currency at the exchange rate in effect when the expense was
// recorded. Conversion is fixed at construction time and never recomputed,
// so historical expenses keep the rate they were booked at.
//
// ConvertedAmount is non-nil exactly when ExchangeRate is non-nil, and always
// equals Amount * ExchangeRate. Treat values as immutable once constructed.
type Money struct {
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	ExchangeRate    *decimal.Decimal `json:"exchange_rate,omitempty"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"`
}

// NewMoney constructs a Money with no conversion applied.
// ConvertedAmount stays nil — an explicit "conversion unknown" state, not zero.
// Negative amounts are rejected with ErrValidation.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// NewMoneyWithRate constructs a Money converted at the given exchange rate.
// ConvertedAmount is computed once, here, as Amount * rate.
// Negative amounts and negative rates are rejected with ErrValidation.
func NewMoneyWithRate(amount decimal.Decimal, currency string, rate decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if rate.IsNegative() {
		return Money{}, fmt.Errorf("%w: exchange rate must not be negative", ErrValidation)
	}
	converted := amount.Mul(rate)
	return Money{
		Amount:          amount,
		Currency:        currency,
		ExchangeRate:    &rate,
		ConvertedAmount: &converted,
	}, nil
}

// BaseAmount returns the value of m in the trip's base currency on a
// best-effort basis: the converted amount when a rate was recorded, otherwise
// the raw amount. Aggregators use this so that a missing rate degrades to an
// unconverted figure instead of an error.
func (m Money) BaseAmount() decimal.Decimal {
	if m.ConvertedAmount != nil {
		return *m.ConvertedAmount
	}
	return m.Amount
}

// ForexSnapshot is the exchange rate table frozen at a point in time.
// Each trip carries exactly one snapshot taken when the trip was created;
// the model never refreshes it — that is the rate provider's job.
type ForexSnapshot struct {
	BaseCurrency string                     `json:"base_currency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	LastUpdated  time.Time                  `json:"last_updated"`
}

// NewForexSnapshot returns an empty snapshot for the given base currency,
// stamped with the current time.
func NewForexSnapshot(baseCurrency string) ForexSnapshot {
	return ForexSnapshot{
		BaseCurrency: baseCurrency,
		Rates:        map[string]decimal.Decimal{},
		LastUpdated:  time.Now().UTC(),
	}
}

// Rate returns the snapshot rate for the given currency code.
// The second return is false when the snapshot has no entry for that code.
func (s ForexSnapshot) Rate(currency string) (decimal.Decimal, bool) {
	r, ok := s.Rates[currency]
	return r, ok
}
