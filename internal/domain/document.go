package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType classifies an attached travel document.
type DocumentType string

const (
	DocumentFlight        DocumentType = "flight"
	DocumentAccommodation DocumentType = "accommodation"
	DocumentTicket        DocumentType = "ticket"
	DocumentReceipt       DocumentType = "receipt"
	DocumentMap           DocumentType = "map"
	DocumentPhoto         DocumentType = "photo"
	DocumentItinerary     DocumentType = "itinerary"
	DocumentPassport      DocumentType = "passport"
	DocumentVisa          DocumentType = "visa"
	DocumentInsurance     DocumentType = "insurance"
	DocumentOther         DocumentType = "other"
)

// TripDocument is a file attached to a trip: a ticket, receipt, passport scan
// and so on. FilePath and CloudURL are both optional; once the file has been
// uploaded at least one of them should be set.
//
// AssociatedPOI and AssociatedRegion are weak references: the document stores
// only the id, and deleting the POI or region leaves the reference dangling.
// Resolve them via Trip.FindPOI / Trip.FindRegion and treat a failed lookup
// as "no longer associated", not an error.
type TripDocument struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	Type             DocumentType `json:"type"`
	FilePath         string       `json:"file_path,omitempty"`
	CloudURL         string       `json:"cloud_url,omitempty"`
	ThumbnailPath    string       `json:"thumbnail_path,omitempty"`
	UploadDate       time.Time    `json:"upload_date"`
	AssociatedPOI    *uuid.UUID   `json:"associated_poi,omitempty"`
	AssociatedRegion *uuid.UUID   `json:"associated_region,omitempty"`
	Tags             []string     `json:"tags"`
	Notes            string       `json:"notes,omitempty"`
}

// NewTripDocument constructs a document with a fresh id, stamped with the
// current time as its upload date.
func NewTripDocument(title string, docType DocumentType) TripDocument {
	return TripDocument{
		ID:         uuid.New(),
		Title:      title,
		Type:       docType,
		UploadDate: time.Now().UTC(),
		Tags:       []string{},
	}
}
