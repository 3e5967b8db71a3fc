package domain

import (
	"sort"
	"time"
)

// TimelineKind classifies one row of a generated itinerary timeline.
type TimelineKind string

const (
	TimelineRegionArrival   TimelineKind = "region_arrival"
	TimelineRegionDeparture TimelineKind = "region_departure"
	TimelineCheckIn         TimelineKind = "check_in"
	TimelineCheckOut        TimelineKind = "check_out"
	TimelinePOIVisit        TimelineKind = "poi_visit"
	TimelineTransport       TimelineKind = "transport"
	TimelineActivity        TimelineKind = "activity"
)

// TimelineEntry is a single row in the derived trip timeline: a flat,
// denormalized view with trip fields repeated on every row. Cost is the
// entry's money in the trip's base currency formatted as a plain decimal
// string, empty when the entry carries no cost.
type TimelineEntry struct {
	TripID    string       `json:"trip_id"`
	TripTitle string       `json:"trip_title"`
	Time      time.Time    `json:"time"`
	Kind      TimelineKind `json:"kind"`
	Title     string       `json:"title"`
	Region    string       `json:"region"`
	Detail    string       `json:"detail,omitempty"`
	Cost      string       `json:"cost,omitempty"`
}

// BuildTimeline derives the date-ordered itinerary for a trip: region
// arrivals and departures, planned POI visits, accommodation check-ins and
// check-outs, scheduled transport legs, and planned daily activities.
// Entries without a usable timestamp (e.g. an unscheduled transport leg)
// are omitted. The sort is stable, so same-instant entries keep the order
// they were collected in (regions before their POIs and accommodations).
func BuildTimeline(t Trip) []TimelineEntry {
	var entries []TimelineEntry

	for _, region := range t.Regions {
		entries = append(entries, collectRegion(t, region)...)
	}
	for _, day := range t.DailySchedules {
		region := ""
		if r, ok := t.FindRegion(day.RegionID); ok {
			region = r.Name
		}
		for _, act := range day.PlannedActivities {
			entries = append(entries, TimelineEntry{
				TripID:    t.ID.String(),
				TripTitle: t.Title,
				Time:      act.StartTime,
				Kind:      TimelineActivity,
				Title:     act.Title,
				Region:    region,
				Detail:    act.Notes,
				Cost:      costString(act.EstimatedCost),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
	return entries
}

// collectRegion gathers timeline entries for one region subtree.
func collectRegion(t Trip, region TripRegion) []TimelineEntry {
	row := func(at time.Time, kind TimelineKind, title, detail, cost string) TimelineEntry {
		return TimelineEntry{
			TripID:    t.ID.String(),
			TripTitle: t.Title,
			Time:      at,
			Kind:      kind,
			Title:     title,
			Region:    region.Name,
			Detail:    detail,
			Cost:      cost,
		}
	}

	entries := []TimelineEntry{
		row(region.ArrivalDate, TimelineRegionArrival, "Arrive in "+region.Name, region.Country, ""),
		row(region.DepartureDate, TimelineRegionDeparture, "Depart "+region.Name, region.Country, ""),
	}

	for _, poi := range region.PointsOfInterest {
		if poi.PlannedVisitDate == nil {
			continue
		}
		entries = append(entries, row(*poi.PlannedVisitDate, TimelinePOIVisit, poi.Name, string(poi.Category), costString(poi.EntryCost)))
	}
	for _, acc := range region.Accommodations {
		entries = append(entries,
			row(acc.CheckInDate, TimelineCheckIn, "Check in: "+acc.Name, acc.Address, costString(acc.TotalCost)),
			row(acc.CheckOutDate, TimelineCheckOut, "Check out: "+acc.Name, acc.Address, ""),
		)
	}
	for _, leg := range region.TransportationMethods {
		if leg.DepartureTime == nil {
			continue
		}
		entries = append(entries, row(*leg.DepartureTime, TimelineTransport,
			leg.FromLocation+" to "+leg.ToLocation, string(leg.Mode), costString(leg.Cost)))
	}
	for _, sub := range region.SubRegions {
		entries = append(entries, collectRegion(t, sub)...)
	}
	return entries
}

// costString formats an optional money value in the trip's base currency,
// or "" when absent.
func costString(m *Money) string {
	if m == nil {
		return ""
	}
	return m.BaseAmount().String()
}
