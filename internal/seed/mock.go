package seed

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tientran/tripsync/backend/internal/domain"
)

// MockRegion builds a three-day region at the given coordinates with a
// modest budget. Useful as a fixture when a test needs a region but does
// not care about its contents.
func MockRegion(name, country string, coordinates domain.Coordinate) domain.TripRegion {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	region := must(domain.NewTripRegion(name, country, start, start.AddDate(0, 0, 3)))
	region.Coordinates = &coordinates
	region.BudgetAllocation = decimalPtr(500)
	return region
}

// MockPOI builds a one-hour POI at the given coordinates.
// Rating is the single nondeterministic field in the whole seed package:
// a uniform draw from [3.5, 5.0]. Everything else is fixed by the inputs.
func MockPOI(name string, category domain.POICategory, coordinates domain.Coordinate) domain.PointOfInterest {
	poi := domain.NewPointOfInterest(name, category, coordinates)
	poi.Rating = floatPtr(3.5 + rand.Float64()*1.5)
	poi.Description = "A wonderful place to visit with great " + string(category) + " experience"
	return poi
}

// MockExpense builds a converted expense in the given currency, for tests
// that need a Money with a known base-currency value.
func MockExpense(amount int64, currency string, rate string) domain.Money {
	return must(domain.NewMoneyWithRate(decimal.NewFromInt(amount), currency, decimal.RequireFromString(rate)))
}
