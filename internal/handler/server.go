// Package handler implements the HTTP handlers for the TripSync backend API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, export.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tientran/tripsync/backend/internal/auth"
	"github.com/tientran/tripsync/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Save(ctx context.Context, userID string, trip domain.Trip) (domain.Trip, error)
	Get(ctx context.Context, userID string, tripID uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID string) ([]domain.Trip, error)
	Delete(ctx context.Context, userID string, tripID uuid.UUID) error
	Summary(ctx context.Context, userID string, tripID uuid.UUID) (domain.TripSummary, error)
	EnsureSeedData(ctx context.Context, userID string) (int, error)
}

// ExportServicer defines the operations the export handler depends on.
type ExportServicer interface {
	Timeline(ctx context.Context, userID string, tripID uuid.UUID) ([]domain.TimelineEntry, error)
}

// ForexServicer provides the exchange rate snapshot frozen into a trip at
// creation time. May be nil, in which case new trips carry an empty snapshot.
type ForexServicer interface {
	Snapshot(ctx context.Context, baseCurrency string) (domain.ForexSnapshot, error)
}

// CredentialChecker verifies a username/password pair and returns the user
// id to issue a session for. The real implementation lives with whatever
// identity provider the deployment uses; tests use a stub.
type CredentialChecker interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Server holds every handler's dependencies.
type Server struct {
	trips  TripServicer
	export ExportServicer
	forex  ForexServicer
	issuer *auth.Issuer
	creds  CredentialChecker
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, export ExportServicer, forex ForexServicer, issuer *auth.Issuer, creds CredentialChecker) *Server {
	return &Server{trips: trips, export: export, forex: forex, issuer: issuer, creds: creds}
}

// Routes returns the API router. Everything under /trips and /seed requires
// a valid session token; /healthz and /auth/login are open.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Post("/auth/login", s.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(s.issuer))

		r.Post("/seed", s.Seed)
		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)
			r.Get("/{id}", s.GetTrip)
			r.Put("/{id}", s.UpdateTrip)
			r.Delete("/{id}", s.DeleteTrip)
			r.Get("/{id}/summary", s.GetTripSummary)
			r.Get("/{id}/export", s.GetTripExport)
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
