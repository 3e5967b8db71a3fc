// Package domain contains the core data types and derivation rules for the
// TripSync itinerary model. Trips own a recursive region tree (country →
// city → district) with points of interest, accommodations, transportation
// legs, documents, and daily schedules hanging off it; all aggregation over
// that tree lives here too.
//
// The package is pure: no I/O, no clocks beyond timestamp defaults, no
// locking. Exactly one logical owner holds a Trip at a time — the calling
// layer, not this package, is responsible for any concurrency control.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip is the root aggregate. It exclusively owns its entire region forest,
// document list, and daily schedules; no entity is shared across two trips.
//
// Mutate a trip through its methods where one exists: every mutator bumps
// LastModified. Direct field writes are possible but leave the timestamp to
// the caller.
type Trip struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedDate  time.Time `json:"created_date"`
	LastModified time.Time `json:"last_modified"`

	HomeCountry     string   `json:"home_country"`
	TargetCountries []string `json:"target_countries"`
	IsInternational bool     `json:"is_international"`

	BaseCurrency string           `json:"base_currency"`
	TotalBudget  *decimal.Decimal `json:"total_budget,omitempty"`
	ActualSpent  decimal.Decimal  `json:"actual_spent"`
	ForexRate    ForexSnapshot    `json:"forex_rate"`

	PrimaryTransportMode  TransportMode `json:"primary_transport_mode"`
	HasFlightDetails      bool          `json:"has_flight_details"`
	FlightPromptDismissed bool          `json:"flight_prompt_dismissed"`

	Regions        []TripRegion    `json:"regions"`
	Documents      []TripDocument  `json:"documents"`
	DailySchedules []DailySchedule `json:"daily_schedules"`

	IsShared      bool     `json:"is_shared"`
	Collaborators []string `json:"collaborators"`
	Tags          []string `json:"tags"`
}

// NewTrip constructs a trip with a fresh id, current timestamps, empty
// collections, and a forex snapshot based on the home country's currency.
// Returns ErrValidation when the title is empty or the end date is before
// the start date. Same-day trips are valid (a one-day trip).
func NewTrip(title string, start, end time.Time, homeCountry string) (Trip, error) {
	if title == "" {
		return Trip{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if end.Before(start) {
		return Trip{}, fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}
	now := time.Now().UTC()
	baseCurrency := DefaultCurrency(homeCountry)
	return Trip{
		ID:                   uuid.New(),
		Title:                title,
		StartDate:            start,
		EndDate:              end,
		CreatedDate:          now,
		LastModified:         now,
		HomeCountry:          homeCountry,
		TargetCountries:      []string{},
		BaseCurrency:         baseCurrency,
		ActualSpent:          decimal.Zero,
		ForexRate:            NewForexSnapshot(baseCurrency),
		PrimaryTransportMode: TransportCar,
		Regions:              []TripRegion{},
		Documents:            []TripDocument{},
		DailySchedules:       []DailySchedule{},
		Collaborators:        []string{},
		Tags:                 []string{},
	}, nil
}

// touch bumps LastModified. Every mutator calls this.
func (t *Trip) touch() {
	t.LastModified = time.Now().UTC()
}

// AddRegion appends a top-level region to the trip's region forest.
func (t *Trip) AddRegion(region TripRegion) {
	t.Regions = append(t.Regions, region)
	t.touch()
}

// AttachDocument adds a document to the trip.
func (t *Trip) AttachDocument(doc TripDocument) {
	t.Documents = append(t.Documents, doc)
	t.touch()
}

// AddDailySchedule adds a day plan to the trip.
func (t *Trip) AddDailySchedule(schedule DailySchedule) {
	t.DailySchedules = append(t.DailySchedules, schedule)
	t.touch()
}

// AddCollaborator grants another user access to the trip and marks it shared.
// Adding a user twice is a no-op. How concurrent edits by collaborators are
// reconciled is out of scope here; the store applies whole-document writes.
func (t *Trip) AddCollaborator(userID string) {
	for _, c := range t.Collaborators {
		if c == userID {
			return
		}
	}
	t.Collaborators = append(t.Collaborators, userID)
	t.IsShared = true
	t.touch()
}

// SetBudget sets the trip's total budget.
// Returns ErrValidation for a negative amount.
func (t *Trip) SetBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return fmt.Errorf("%w: total_budget must not be negative", ErrValidation)
	}
	b := budget
	t.TotalBudget = &b
	t.touch()
	return nil
}

// RecordSpend adds an expense to the trip's running total, in the base
// currency on a best-effort basis (converted amount when recorded, raw
// amount otherwise).
func (t *Trip) RecordSpend(m Money) {
	t.ActualSpent = t.ActualSpent.Add(m.BaseAmount())
	t.touch()
}

// FindRegion resolves a region id anywhere in the trip's region forest.
func (t *Trip) FindRegion(id uuid.UUID) (*TripRegion, bool) {
	for i := range t.Regions {
		if found, ok := t.Regions[i].FindRegion(id); ok {
			return found, ok
		}
	}
	return nil, false
}

// FindPOI resolves a POI id anywhere in the trip's region forest, pre-order.
// Weak references (documents, scheduled activities) resolve through this;
// a false return means the POI was deleted and the reference simply
// no longer resolves.
func (t *Trip) FindPOI(id uuid.UUID) (PointOfInterest, bool) {
	for _, region := range t.Regions {
		for _, poi := range region.FlattenPOIs() {
			if poi.ID == id {
				return poi, true
			}
		}
	}
	return PointOfInterest{}, false
}

// TotalSpend sums TotalActualSpent over every top-level region.
func (t Trip) TotalSpend() decimal.Decimal {
	total := decimal.Zero
	for _, region := range t.Regions {
		total = total.Add(region.TotalActualSpent())
	}
	return total
}

// DurationDays returns the trip length in days, inclusive of both endpoints:
// a trip starting day 0 and ending day 6 lasts 7 days. Partial final days
// round up.
func (t Trip) DurationDays() int {
	days := t.EndDate.Sub(t.StartDate).Hours() / 24
	whole := int(days)
	if days > float64(whole) {
		whole++
	}
	return whole + 1
}

// IsOverBudget reports whether spending has exceeded the total budget.
// Always false when no budget is set, regardless of spend.
func (t Trip) IsOverBudget() bool {
	if t.TotalBudget == nil {
		return false
	}
	return t.TotalSpend().GreaterThan(*t.TotalBudget)
}
