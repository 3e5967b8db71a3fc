package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tientran/tripsync/backend/internal/service"
)

// countingRateSource wraps a StaticRateSource and counts upstream calls.
type countingRateSource struct {
	inner service.StaticRateSource
	calls int
}

func (c *countingRateSource) Rates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	c.calls++
	return c.inner.Rates(ctx, base)
}

func staticRates() service.StaticRateSource {
	return service.StaticRateSource{
		"AUD": {
			"VND": decimal.RequireFromString("16000"),
			"JPY": decimal.RequireFromString("97.5"),
		},
	}
}

func TestForexService_Snapshot(t *testing.T) {
	svc := service.NewForexService(staticRates(), time.Minute)

	snap, err := svc.Snapshot(context.Background(), "AUD")

	require.NoError(t, err)
	assert.Equal(t, "AUD", snap.BaseCurrency)
	rate, ok := snap.Rate("VND")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(16000)))
	assert.False(t, snap.LastUpdated.IsZero())
}

func TestForexService_Snapshot_CachesPerBaseCurrency(t *testing.T) {
	source := &countingRateSource{inner: staticRates()}
	svc := service.NewForexService(source, time.Minute)

	first, err := svc.Snapshot(context.Background(), "AUD")
	require.NoError(t, err)
	second, err := svc.Snapshot(context.Background(), "AUD")
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	// A cached table is reused as-is, timestamp included.
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
}

func TestForexService_Snapshot_RateMapsAreIsolated(t *testing.T) {
	source := staticRates()
	svc := service.NewForexService(source, time.Minute)

	first, err := svc.Snapshot(context.Background(), "AUD")
	require.NoError(t, err)

	// A trip scribbling on its snapshot must not leak into the cache, the
	// source's backing table, or any later snapshot.
	first.Rates["VND"] = decimal.NewFromInt(1)
	delete(first.Rates, "JPY")

	second, err := svc.Snapshot(context.Background(), "AUD")
	require.NoError(t, err)
	rate, ok := second.Rate("VND")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(16000)), "got %s", rate)
	_, ok = second.Rate("JPY")
	assert.True(t, ok)

	assert.True(t, source["AUD"]["VND"].Equal(decimal.NewFromInt(16000)))
}

func TestForexService_Snapshot_UnknownBaseCurrency(t *testing.T) {
	svc := service.NewForexService(staticRates(), time.Minute)

	_, err := svc.Snapshot(context.Background(), "XYZ")

	assert.Error(t, err)
}
