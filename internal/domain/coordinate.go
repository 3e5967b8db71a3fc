package domain

// Coordinate is a plain latitude/longitude pair. Value type; compare with ==.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CoordinatePair holds the origin and destination of a transportation leg.
// Either side may be nil when the endpoint has not been geocoded yet.
type CoordinatePair struct {
	From *Coordinate `json:"from,omitempty"`
	To   *Coordinate `json:"to,omitempty"`
}
