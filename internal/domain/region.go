package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegionPriority expresses how important a region is to the traveller.
type RegionPriority string

const (
	PriorityLow     RegionPriority = "low"
	PriorityMedium  RegionPriority = "medium"
	PriorityHigh    RegionPriority = "high"
	PriorityMustSee RegionPriority = "must_see"
)

// WeatherInfo summarizes expected conditions for a region or day.
type WeatherInfo struct {
	AverageHigh     float64 `json:"average_high"`
	AverageLow      float64 `json:"average_low"`
	Precipitation   float64 `json:"precipitation"`
	Humidity        float64 `json:"humidity"`
	Season          string  `json:"season"`
	Recommendations string  `json:"recommendations,omitempty"`
}

// TripRegion is one geographic level of a trip: a country, a city within it,
// a district within that. Regions nest recursively through SubRegions and
// exclusively own every nested structure — a region tree is strictly a tree,
// never a cycle (AddSubRegion enforces this at insertion time).
//
// Sibling order in SubRegions, PointsOfInterest, Accommodations and
// TransportationMethods is insertion order; the model applies no sorting.
type TripRegion struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	ArrivalDate   time.Time `json:"arrival_date"`
	DepartureDate time.Time `json:"departure_date"`

	Coordinates   *Coordinate `json:"coordinates,omitempty"`
	Timezone      string      `json:"timezone"`
	LocalCurrency string      `json:"local_currency"`

	BudgetAllocation      *decimal.Decimal `json:"budget_allocation,omitempty"`
	ActualSpent           decimal.Decimal  `json:"actual_spent"`
	DailyBudgetSuggestion *decimal.Decimal `json:"daily_budget_suggestion,omitempty"`

	SubRegions            []TripRegion           `json:"sub_regions"`
	PointsOfInterest      []PointOfInterest      `json:"points_of_interest"`
	Accommodations        []Accommodation        `json:"accommodations"`
	TransportationMethods []TransportationMethod `json:"transportation_methods"`

	Notes       string         `json:"notes,omitempty"`
	Priority    RegionPriority `json:"priority"`
	WeatherInfo *WeatherInfo   `json:"weather_info,omitempty"`
}

// NewTripRegion constructs a region with a fresh id, medium priority, and the
// country's default currency. Returns ErrValidation when the departure date
// is before the arrival date.
//
// Whether a sub-region's date range must fall inside its parent's is
// deliberately not checked; transit regions may straddle the boundary.
func NewTripRegion(name, country string, arrival, departure time.Time) (TripRegion, error) {
	if departure.Before(arrival) {
		return TripRegion{}, fmt.Errorf("%w: departure_date must not be before arrival_date", ErrValidation)
	}
	return TripRegion{
		ID:                    uuid.New(),
		Name:                  name,
		Country:               country,
		ArrivalDate:           arrival,
		DepartureDate:         departure,
		Timezone:              "UTC",
		LocalCurrency:         DefaultCurrency(country),
		ActualSpent:           decimal.Zero,
		SubRegions:            []TripRegion{},
		PointsOfInterest:      []PointOfInterest{},
		Accommodations:        []Accommodation{},
		TransportationMethods: []TransportationMethod{},
		Priority:              PriorityMedium,
	}, nil
}

// AddSubRegion appends sub to the region's children.
// It rejects an insert that would make the region its own descendant: sub
// must not be, or contain, a region with this region's id.
func (r *TripRegion) AddSubRegion(sub TripRegion) error {
	if sub.ID == r.ID || sub.containsRegion(r.ID) {
		return fmt.Errorf("%w: region %s cannot become its own descendant", ErrValidation, r.ID)
	}
	r.SubRegions = append(r.SubRegions, sub)
	return nil
}

// containsRegion reports whether id appears anywhere in r's subtree,
// excluding r itself.
func (r TripRegion) containsRegion(id uuid.UUID) bool {
	for i := range r.SubRegions {
		if r.SubRegions[i].ID == id || r.SubRegions[i].containsRegion(id) {
			return true
		}
	}
	return false
}

// FindRegion returns the region with the given id within r's subtree
// (including r itself), searched pre-order.
func (r *TripRegion) FindRegion(id uuid.UUID) (*TripRegion, bool) {
	if r.ID == id {
		return r, true
	}
	for i := range r.SubRegions {
		if found, ok := r.SubRegions[i].FindRegion(id); ok {
			return found, ok
		}
	}
	return nil, false
}

// FlattenPOIs returns every POI in r and its descendants in stable pre-order:
// r's own POIs first (insertion order), then each sub-region's, recursively.
// Terminates for any tree; depth is bounded by actual nesting.
func (r TripRegion) FlattenPOIs() []PointOfInterest {
	pois := make([]PointOfInterest, 0, len(r.PointsOfInterest))
	pois = append(pois, r.PointsOfInterest...)
	for _, sub := range r.SubRegions {
		pois = append(pois, sub.FlattenPOIs()...)
	}
	return pois
}

// TotalBudgetAllocated sums BudgetAllocation over r and all descendants.
// Regions without an allocation contribute zero.
func (r TripRegion) TotalBudgetAllocated() decimal.Decimal {
	total := decimal.Zero
	if r.BudgetAllocation != nil {
		total = total.Add(*r.BudgetAllocation)
	}
	for _, sub := range r.SubRegions {
		total = total.Add(sub.TotalBudgetAllocated())
	}
	return total
}

// TotalActualSpent sums ActualSpent over r and all descendants, plus every
// POI's actual spending. POI money is taken in the trip's base currency when
// a conversion was recorded, otherwise at its raw amount (best effort —
// missing rates must not fail an aggregation).
func (r TripRegion) TotalActualSpent() decimal.Decimal {
	total := r.ActualSpent
	for _, poi := range r.PointsOfInterest {
		if poi.ActualSpending != nil {
			total = total.Add(poi.ActualSpending.BaseAmount())
		}
	}
	for _, sub := range r.SubRegions {
		total = total.Add(sub.TotalActualSpent())
	}
	return total
}
