package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegionSummary is the budget roll-up for one region subtree.
type RegionSummary struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	BudgetAllocated decimal.Decimal `json:"budget_allocated"`
	ActualSpent     decimal.Decimal `json:"actual_spent"`
	POICount        int             `json:"poi_count"`
}

// TripSummary is the derived financial and scheduling overview of a trip.
type TripSummary struct {
	TripID          uuid.UUID        `json:"trip_id"`
	Title           string           `json:"title"`
	DurationDays    int              `json:"duration_days"`
	TotalBudget     *decimal.Decimal `json:"total_budget,omitempty"`
	BudgetAllocated decimal.Decimal  `json:"budget_allocated"`
	TotalSpend      decimal.Decimal  `json:"total_spend"`
	OverBudget      bool             `json:"over_budget"`
	Regions         []RegionSummary  `json:"regions"`
}

// Summarize derives a TripSummary from a trip. Pure and idempotent: calling
// it twice on an unmodified trip yields the same result both times.
// Missing budget figures contribute zero rather than failing.
func Summarize(t Trip) TripSummary {
	s := TripSummary{
		TripID:       t.ID,
		Title:        t.Title,
		DurationDays: t.DurationDays(),
		TotalBudget:  t.TotalBudget,
		TotalSpend:   t.TotalSpend(),
		OverBudget:   t.IsOverBudget(),
		Regions:      make([]RegionSummary, 0, len(t.Regions)),
	}
	allocated := decimal.Zero
	for _, region := range t.Regions {
		regionAllocated := region.TotalBudgetAllocated()
		allocated = allocated.Add(regionAllocated)
		s.Regions = append(s.Regions, RegionSummary{
			ID:              region.ID,
			Name:            region.Name,
			BudgetAllocated: regionAllocated,
			ActualSpent:     region.TotalActualSpent(),
			POICount:        len(region.FlattenPOIs()),
		})
	}
	s.BudgetAllocated = allocated
	return s
}
