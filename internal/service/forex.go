package service

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/tientran/tripsync/backend/internal/domain"
)

// RateSource provides a current exchange rate table for a base currency.
// It is the external collaborator boundary: implementations may hit a forex
// API and take unbounded time; the domain model only ever sees the frozen
// snapshot this service hands back.
type RateSource interface {
	Rates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}

// StaticRateSource serves a fixed in-memory rate table.
// Useful in development and tests when no forex API is configured.
type StaticRateSource map[string]map[string]decimal.Decimal

// Rates returns the configured table for the base currency, or an error
// when none is configured.
func (s StaticRateSource) Rates(_ context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	rates, ok := s[baseCurrency]
	if !ok {
		return nil, fmt.Errorf("no rates configured for base currency %q", baseCurrency)
	}
	return rates, nil
}

// DefaultRates returns the built-in AUD rate table used when no external
// forex source is configured. Values are indicative only; deployments with
// a real rate feed replace this source entirely.
func DefaultRates() StaticRateSource {
	return StaticRateSource{
		"AUD": {
			"USD": decimal.RequireFromString("0.65"),
			"EUR": decimal.RequireFromString("0.60"),
			"VND": decimal.RequireFromString("16000"),
			"JPY": decimal.RequireFromString("97.5"),
			"IDR": decimal.RequireFromString("10500"),
			"SGD": decimal.RequireFromString("0.87"),
		},
	}
}

// ForexService produces the per-trip ForexSnapshot at trip-creation time.
// Rate tables are cached per base currency with a TTL so a burst of trip
// creations does not hammer the upstream source. The snapshot a trip carries
// is never refreshed after creation — that is the whole point of a snapshot.
type ForexService struct {
	source RateSource
	cache  *gocache.Cache
}

// NewForexService constructs a ForexService caching rate tables for ttl.
func NewForexService(source RateSource, ttl time.Duration) *ForexService {
	return &ForexService{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// Snapshot returns a ForexSnapshot for the base currency, stamped with the
// time the underlying table was fetched. A cached table within its TTL is
// reused. Every snapshot handed out carries its own copy of the rate map:
// a trip mutating its table must not reach the cache, the source's backing
// map, or any other trip's snapshot.
func (s *ForexService) Snapshot(ctx context.Context, baseCurrency string) (domain.ForexSnapshot, error) {
	if cached, ok := s.cache.Get(baseCurrency); ok {
		snapshot := cached.(domain.ForexSnapshot)
		snapshot.Rates = copyRates(snapshot.Rates)
		return snapshot, nil
	}

	rates, err := s.source.Rates(ctx, baseCurrency)
	if err != nil {
		return domain.ForexSnapshot{}, fmt.Errorf("service.ForexService.Snapshot: %w", err)
	}

	snapshot := domain.ForexSnapshot{
		BaseCurrency: baseCurrency,
		Rates:        copyRates(rates),
		LastUpdated:  time.Now().UTC(),
	}
	s.cache.SetDefault(baseCurrency, snapshot)

	snapshot.Rates = copyRates(snapshot.Rates)
	return snapshot, nil
}

// copyRates returns a fresh map with the same entries.
func copyRates(rates map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		out[code] = rate
	}
	return out
}
