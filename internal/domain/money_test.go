package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tientran/tripsync/backend/internal/domain"
)

func TestNewMoneyWithRate_ComputesConvertedAmount(t *testing.T) {
	amount := decimal.NewFromInt(500000)
	rate := decimal.RequireFromString("0.000041")

	m, err := domain.NewMoneyWithRate(amount, "VND", rate)

	require.NoError(t, err)
	require.NotNil(t, m.ExchangeRate)
	require.NotNil(t, m.ConvertedAmount)
	// Conversion is exact decimal arithmetic, not float.
	assert.True(t, m.ConvertedAmount.Equal(decimal.RequireFromString("20.5")),
		"got %s", m.ConvertedAmount)
	assert.True(t, m.ConvertedAmount.Equal(m.Amount.Mul(*m.ExchangeRate)))
}

func TestNewMoney_NoRateLeavesConversionUnresolved(t *testing.T) {
	m, err := domain.NewMoney(decimal.NewFromInt(100), "JPY")

	require.NoError(t, err)
	// Unknown conversion is nil, never zero.
	assert.Nil(t, m.ExchangeRate)
	assert.Nil(t, m.ConvertedAmount)
}

func TestNewMoney_NegativeAmountRejected(t *testing.T) {
	_, err := domain.NewMoney(decimal.NewFromInt(-5), "AUD")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewMoneyWithRate_NegativeRateRejected(t *testing.T) {
	_, err := domain.NewMoneyWithRate(decimal.NewFromInt(5), "AUD", decimal.NewFromInt(-1))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMoney_BaseAmount(t *testing.T) {
	converted, err := domain.NewMoneyWithRate(decimal.NewFromInt(1000), "VND", decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	raw, err := domain.NewMoney(decimal.NewFromInt(1000), "VND")
	require.NoError(t, err)

	// Converted amount when a rate was recorded, raw amount otherwise.
	assert.True(t, converted.BaseAmount().Equal(decimal.NewFromInt(500)))
	assert.True(t, raw.BaseAmount().Equal(decimal.NewFromInt(1000)))
}

func TestDefaultCurrency(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"Australia", "AUD"},
		{"Vietnam", "VND"},
		{"Japan", "JPY"},
		{"France", "EUR"},
		{"Indonesia", "IDR"},
		{"United States", "USD"},
		{"Atlantis", "USD"}, // unmapped countries fail open to USD
		{"", "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DefaultCurrency(tt.country))
		})
	}
}

func TestForexSnapshot_Rate(t *testing.T) {
	snap := domain.NewForexSnapshot("AUD")
	snap.Rates["VND"] = decimal.RequireFromString("16000")

	r, ok := snap.Rate("VND")
	require.True(t, ok)
	assert.True(t, r.Equal(decimal.NewFromInt(16000)))

	_, ok = snap.Rate("JPY")
	assert.False(t, ok)
}
