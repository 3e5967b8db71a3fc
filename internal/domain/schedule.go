package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduledActivity is one timed entry on a daily schedule.
// POIID is a weak reference: resolve via Trip.FindPOI, and treat a failed
// lookup as an activity with no linked POI.
// Invariant: EndTime is strictly after StartTime.
type ScheduledActivity struct {
	ID                       uuid.UUID             `json:"id"`
	POIID                    *uuid.UUID            `json:"poi_id,omitempty"`
	Title                    string                `json:"title"`
	StartTime                time.Time             `json:"start_time"`
	EndTime                  time.Time             `json:"end_time"`
	TransportationToActivity *TransportationMethod `json:"transportation_to_activity,omitempty"`
	EstimatedCost            *Money                `json:"estimated_cost,omitempty"`
	ActualCost               *Money                `json:"actual_cost,omitempty"`
	Completed                bool                  `json:"completed"`
	Rating                   *float64              `json:"rating,omitempty"`
	Notes                    string                `json:"notes,omitempty"`
}

// NewScheduledActivity constructs an activity with a fresh id.
// Returns ErrValidation when end is not after start.
func NewScheduledActivity(title string, start, end time.Time) (ScheduledActivity, error) {
	if !end.After(start) {
		return ScheduledActivity{}, fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	return ScheduledActivity{
		ID:        uuid.New(),
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// Complete marks the activity done, recording what it actually cost
// (nil when nothing was spent) and an optional rating.
func (a *ScheduledActivity) Complete(actualCost *Money, rating *float64) {
	a.Completed = true
	a.ActualCost = actualCost
	a.Rating = rating
}

// DailySchedule is the plan (and the record) for one day of a trip.
// RegionID is a weak reference to the region the day is spent in.
type DailySchedule struct {
	ID                uuid.UUID           `json:"id"`
	Date              time.Time           `json:"date"`
	RegionID          uuid.UUID           `json:"region_id"`
	PlannedActivities []ScheduledActivity `json:"planned_activities"`
	ActualActivities  []ScheduledActivity `json:"actual_activities"`
	DailyBudget       *Money              `json:"daily_budget,omitempty"`
	ActualSpent       *Money              `json:"actual_spent,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	WeatherForecast   *WeatherInfo        `json:"weather_forecast,omitempty"`
}

// NewDailySchedule constructs an empty schedule for a date within a region.
func NewDailySchedule(date time.Time, regionID uuid.UUID) DailySchedule {
	return DailySchedule{
		ID:                uuid.New(),
		Date:              date,
		RegionID:          regionID,
		PlannedActivities: []ScheduledActivity{},
		ActualActivities:  []ScheduledActivity{},
	}
}
