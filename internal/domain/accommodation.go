package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccommodationType classifies where the traveller sleeps.
type AccommodationType string

const (
	AccommodationHotel      AccommodationType = "hotel"
	AccommodationHostel     AccommodationType = "hostel"
	AccommodationAirbnb     AccommodationType = "airbnb"
	AccommodationGuesthouse AccommodationType = "guesthouse"
	AccommodationResort     AccommodationType = "resort"
	AccommodationCamping    AccommodationType = "camping"
	AccommodationApartment  AccommodationType = "apartment"
	AccommodationOther      AccommodationType = "other"
)

// Accommodation is a booked (or planned) place to stay within a region.
// Invariant: CheckOutDate is strictly after CheckInDate.
type Accommodation struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Type             AccommodationType `json:"type"`
	Address          string            `json:"address,omitempty"`
	Coordinates      *Coordinate       `json:"coordinates,omitempty"`
	CheckInDate      time.Time         `json:"check_in_date"`
	CheckOutDate     time.Time         `json:"check_out_date"`
	TotalCost        *Money            `json:"total_cost,omitempty"`
	BookingReference string            `json:"booking_reference,omitempty"`
	Rating           *float64          `json:"rating,omitempty"`
	Amenities        []string          `json:"amenities"`
	Notes            string            `json:"notes,omitempty"`
	Photos           []string          `json:"photos"`
}

// NewAccommodation constructs an Accommodation with a fresh id, defaulting to
// a hotel. Returns ErrValidation when checkOut is not after checkIn.
func NewAccommodation(name string, checkIn, checkOut time.Time) (Accommodation, error) {
	if !checkOut.After(checkIn) {
		return Accommodation{}, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
	}
	return Accommodation{
		ID:           uuid.New(),
		Name:         name,
		Type:         AccommodationHotel,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Amenities:    []string{},
		Photos:       []string{},
	}, nil
}

// Nights returns the number of nights between check-in and check-out.
func (a Accommodation) Nights() int {
	return int(a.CheckOutDate.Sub(a.CheckInDate).Hours() / 24)
}
