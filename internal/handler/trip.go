package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/tientran/tripsync/backend/internal/auth"
	"github.com/tientran/tripsync/backend/internal/domain"
)

// CreateTripRequest is the POST /trips body. Dates are date-only; the trip
// document stores them as midnight UTC timestamps.
type CreateTripRequest struct {
	Title                string             `json:"title"`
	StartDate            openapi_types.Date `json:"start_date"`
	EndDate              openapi_types.Date `json:"end_date"`
	HomeCountry          *string            `json:"home_country,omitempty"`
	TargetCountries      *[]string          `json:"target_countries,omitempty"`
	TotalBudget          *string            `json:"total_budget,omitempty"`
	PrimaryTransportMode *string            `json:"primary_transport_mode,omitempty"`
	Tags                 *[]string          `json:"tags,omitempty"`
}

// TripListItem is one row of the GET /trips response. The full document is
// served by GET /trips/{id}; the list carries just enough for the trip list
// screen.
type TripListItem struct {
	Id              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	StartDate       openapi_types.Date `json:"start_date"`
	EndDate         openapi_types.Date `json:"end_date"`
	HomeCountry     string             `json:"home_country"`
	IsInternational bool               `json:"is_international"`
	TotalBudget     *string            `json:"total_budget,omitempty"`
	CreatedDate     time.Time          `json:"created_date"`
}

// Pagination echoes the applied page/limit back to the client.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripListResponse is the GET /trips envelope.
type TripListResponse struct {
	Data       []TripListItem `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := requestToTrip(body)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			unprocessable(w, err)
			return
		}
		badRequest(w, err.Error())
		return
	}

	// Freeze the current rate table into the new trip. An unavailable rate
	// source degrades to the empty snapshot rather than failing the create.
	if s.forex != nil {
		if snap, err := s.forex.Snapshot(r.Context(), trip.BaseCurrency); err == nil {
			trip.ForexRate = snap
		}
	}

	created, err := s.trips.Save(r.Context(), auth.UserID(r.Context()), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			unprocessable(w, err)
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100). The store returns the user's trips already sorted by created
// date descending; pagination slices that in memory.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		internalError(w)
		return
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	start, end := params.Slice(len(trips))

	data := make([]TripListItem, 0, end-start)
	for _, t := range trips[start:end] {
		data = append(data, tripToListItem(t))
	}
	writeJSON(w, http.StatusOK, TripListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(trips),
		},
	})
}

// GetTrip handles GET /trips/{id}. The response is the full trip document,
// nested regions and all.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathTripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.Get(r.Context(), auth.UserID(r.Context()), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{id}. The body is the full trip document;
// the path id wins over any id in the body. Because the store is a
// whole-document upsert, updating is a full replace, not a field merge.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathTripID(w, r)
	if !ok {
		return
	}

	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		badRequest(w, "request body is required")
		return
	}
	trip.ID = tripID
	trip.LastModified = time.Now().UTC()

	updated, err := s.trips.Save(r.Context(), auth.UserID(r.Context()), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			unprocessable(w, err)
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathTripID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), auth.UserID(r.Context()), tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTripSummary handles GET /trips/{id}/summary.
func (s *Server) GetTripSummary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathTripID(w, r)
	if !ok {
		return
	}

	summary, err := s.trips.Summary(r.Context(), auth.UserID(r.Context()), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Seed handles POST /seed: bootstrap sample trips for an account with no
// trips yet. Idempotent — an account with any trip gets seeded=0.
func (s *Server) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := s.trips.EnsureSeedData(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"seeded": n})
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a CreateTripRequest into a domain.Trip.
func requestToTrip(body CreateTripRequest) (domain.Trip, error) {
	homeCountry := "Australia"
	if body.HomeCountry != nil {
		homeCountry = *body.HomeCountry
	}

	trip, err := domain.NewTrip(body.Title, body.StartDate.Time, body.EndDate.Time, homeCountry)
	if err != nil {
		return domain.Trip{}, err
	}

	if body.TargetCountries != nil {
		trip.TargetCountries = *body.TargetCountries
		trip.IsInternational = isInternational(homeCountry, *body.TargetCountries)
	}
	if body.Tags != nil {
		trip.Tags = *body.Tags
	}
	if body.PrimaryTransportMode != nil {
		trip.PrimaryTransportMode = domain.TransportMode(*body.PrimaryTransportMode)
	}
	if body.TotalBudget != nil {
		budget, err := decimal.NewFromString(*body.TotalBudget)
		if err != nil {
			return domain.Trip{}, errors.New("total_budget must be a decimal number")
		}
		if err := trip.SetBudget(budget); err != nil {
			return domain.Trip{}, err
		}
	}
	return trip, nil
}

// tripToListItem projects a trip document onto the list row shape.
func tripToListItem(t domain.Trip) TripListItem {
	item := TripListItem{
		Id:              t.ID,
		Title:           t.Title,
		StartDate:       openapi_types.Date{Time: t.StartDate},
		EndDate:         openapi_types.Date{Time: t.EndDate},
		HomeCountry:     t.HomeCountry,
		IsInternational: t.IsInternational,
		CreatedDate:     t.CreatedDate,
	}
	if t.TotalBudget != nil {
		b := t.TotalBudget.String()
		item.TotalBudget = &b
	}
	return item
}

// isInternational reports whether any target country differs from home.
func isInternational(homeCountry string, targets []string) bool {
	for _, c := range targets {
		if c != homeCountry {
			return true
		}
	}
	return false
}

// pathTripID parses the {id} path parameter, writing a 400 on failure.
func pathTripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "trip id must be a UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, nil when absent or
// malformed (pagination falls back to its defaults).
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
