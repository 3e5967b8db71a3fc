package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransportMode is how the traveller moves between two locations.
type TransportMode string

const (
	TransportFlight    TransportMode = "flight"
	TransportCar       TransportMode = "car"
	TransportTrain     TransportMode = "train"
	TransportBus       TransportMode = "bus"
	TransportFerry     TransportMode = "ferry"
	TransportWalking   TransportMode = "walking"
	TransportBicycle   TransportMode = "bicycle"
	TransportTaxi      TransportMode = "taxi"
	TransportRideshare TransportMode = "rideshare"
	TransportPublic    TransportMode = "public_transport"
	TransportMixed     TransportMode = "mixed"
)

// TransportationMethod is one leg of travel between two named locations.
// Invariant: when both timestamps are present, arrival is not before departure.
type TransportationMethod struct {
	ID               uuid.UUID      `json:"id"`
	Mode             TransportMode  `json:"mode"`
	FromLocation     string         `json:"from_location"`
	ToLocation       string         `json:"to_location"`
	DepartureTime    *time.Time     `json:"departure_time,omitempty"`
	ArrivalTime      *time.Time     `json:"arrival_time,omitempty"`
	Cost             *Money         `json:"cost,omitempty"`
	BookingReference string         `json:"booking_reference,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	Coordinates      CoordinatePair `json:"coordinates"`
}

// NewTransportationMethod constructs a leg with a fresh id and no schedule.
func NewTransportationMethod(mode TransportMode, from, to string) TransportationMethod {
	return TransportationMethod{
		ID:           uuid.New(),
		Mode:         mode,
		FromLocation: from,
		ToLocation:   to,
	}
}

// Schedule sets departure and arrival times.
// Returns ErrValidation when arrival is before departure.
func (t *TransportationMethod) Schedule(departure, arrival time.Time) error {
	if arrival.Before(departure) {
		return fmt.Errorf("%w: arrival_time must not be before departure_time", ErrValidation)
	}
	dep, arr := departure, arrival
	t.DepartureTime = &dep
	t.ArrivalTime = &arr
	return nil
}
