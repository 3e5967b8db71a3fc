package domain

import (
	"time"

	"github.com/google/uuid"
)

// POICategory classifies a point of interest. Closed set; stored as its
// string value so serialized trips stay readable.
type POICategory string

const (
	CategoryRestaurant     POICategory = "restaurant"
	CategoryAttraction     POICategory = "attraction"
	CategoryMuseum         POICategory = "museum"
	CategoryPark           POICategory = "park"
	CategoryShopping       POICategory = "shopping"
	CategoryNightlife      POICategory = "nightlife"
	CategoryAccommodation  POICategory = "accommodation"
	CategoryTransportation POICategory = "transportation"
	CategoryMedical        POICategory = "medical"
	CategoryEntertainment  POICategory = "entertainment"
	CategoryCultural       POICategory = "cultural"
	CategoryNature         POICategory = "nature"
	CategoryReligious      POICategory = "religious"
	CategoryMarket         POICategory = "market"
	CategoryCafe           POICategory = "cafe"
	CategoryViewpoint      POICategory = "viewpoint"
	CategoryBeach          POICategory = "beach"
	CategoryOther          POICategory = "other"
)

// OpeningHours describes one weekday's opening window.
// DayOfWeek is 1–7 with Sunday = 1. Times are "HH:MM" local strings.
type OpeningHours struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

// BookingInfo captures reservation details for a POI that requires booking.
type BookingInfo struct {
	IsBooked           bool       `json:"is_booked"`
	BookingReference   string     `json:"booking_reference,omitempty"`
	BookingDate        *time.Time `json:"booking_date,omitempty"`
	BookingPlatform    string     `json:"booking_platform,omitempty"`
	ContactInfo        string     `json:"contact_info,omitempty"`
	CancellationPolicy string     `json:"cancellation_policy,omitempty"`
}

// PointOfInterest is a single location a traveller plans to (or did) visit.
// A POI is owned by exactly one region and never outlives it.
//
// TransportFromPrevious describes how the traveller gets here from the
// previous stop; Documents holds weak references (ids) into the trip's
// document list.
type PointOfInterest struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Category    POICategory `json:"category"`
	Coordinates Coordinate  `json:"coordinates"`
	Address     string      `json:"address,omitempty"`

	PlannedVisitDate  *time.Time     `json:"planned_visit_date,omitempty"`
	EstimatedDuration time.Duration  `json:"estimated_duration"`
	VisitedDate       *time.Time     `json:"visited_date,omitempty"`
	ActualDuration    *time.Duration `json:"actual_duration,omitempty"`

	EntryCost         *Money `json:"entry_cost,omitempty"`
	EstimatedSpending *Money `json:"estimated_spending,omitempty"`
	ActualSpending    *Money `json:"actual_spending,omitempty"`

	Description string      `json:"description,omitempty"`
	Rating      *float64    `json:"rating,omitempty"`
	Photos      []string    `json:"photos"`
	Documents   []uuid.UUID `json:"documents"`

	OpeningHours      []OpeningHours `json:"opening_hours"`
	BookingRequired   bool           `json:"booking_required"`
	BookingInfo       *BookingInfo   `json:"booking_info,omitempty"`
	AccessibilityInfo string         `json:"accessibility_info,omitempty"`

	TransportFromPrevious        *TransportationMethod `json:"transport_from_previous,omitempty"`
	WalkingTimeFromAccommodation *time.Duration        `json:"walking_time_from_accommodation,omitempty"`
}

// NewPointOfInterest constructs a POI with a fresh id and sensible defaults:
// empty collections and a one-hour estimated visit duration.
func NewPointOfInterest(name string, category POICategory, coordinates Coordinate) PointOfInterest {
	return PointOfInterest{
		ID:                uuid.New(),
		Name:              name,
		Category:          category,
		Coordinates:       coordinates,
		EstimatedDuration: time.Hour,
		Photos:            []string{},
		Documents:         []uuid.UUID{},
		OpeningHours:      []OpeningHours{},
	}
}

// MarkVisited records an actual visit: the visit timestamp, how long it took,
// and what was spent (nil when nothing was spent).
func (p *PointOfInterest) MarkVisited(at time.Time, duration time.Duration, spent *Money) {
	visited := at
	p.VisitedDate = &visited
	d := duration
	p.ActualDuration = &d
	p.ActualSpending = spent
}
