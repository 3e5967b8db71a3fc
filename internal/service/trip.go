// Package service contains the business logic for the TripSync backend.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tientran/tripsync/backend/internal/domain"
	"github.com/tientran/tripsync/backend/internal/repo"
	"github.com/tientran/tripsync/backend/internal/seed"
)

// TripService implements business logic for trip operations.
// All operations are scoped to a user id — the namespace key handed down
// from the auth layer.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Save validates and persists a trip document for the user.
// Returns domain.ErrValidation if the trip violates business rules.
func (s *TripService) Save(ctx context.Context, userID string, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if err := s.repo.Save(ctx, userID, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Save: %w", err)
	}
	return trip, nil
}

// Get returns a single trip by id.
// Returns domain.ErrNotFound if the user has no trip with that id.
func (s *TripService) Get(ctx context.Context, userID string, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.Get(ctx, userID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return trip, nil
}

// List returns all of the user's trips, most recently created first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := s.repo.Fetch(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Delete removes a trip by id.
// Returns domain.ErrNotFound if the user has no trip with that id.
func (s *TripService) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Summary returns the derived budget/duration overview for one trip.
func (s *TripService) Summary(ctx context.Context, userID string, tripID uuid.UUID) (domain.TripSummary, error) {
	trip, err := s.repo.Get(ctx, userID, tripID)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("service.TripService.Summary: %w", err)
	}
	return domain.Summarize(trip), nil
}

// EnsureSeedData bootstraps a brand-new account: when the user has zero
// trips, every sample builder's trip is saved once. Accounts with any
// existing trip are left untouched, so the call is idempotent.
// Returns the number of trips seeded.
func (s *TripService) EnsureSeedData(ctx context.Context, userID string) (int, error) {
	existing, err := s.repo.Fetch(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.EnsureSeedData: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	trips := seed.AllTrips()
	for _, trip := range trips {
		if err := s.repo.Save(ctx, userID, trip); err != nil {
			return 0, fmt.Errorf("service.TripService.EnsureSeedData: save %q: %w", trip.Title, err)
		}
	}
	return len(trips), nil
}

// validateTrip enforces business rules common to create and update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - EndDate must not be before StartDate.
//   - TotalBudget, if set, must not be negative.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if trip.TotalBudget != nil && trip.TotalBudget.IsNegative() {
		return fmt.Errorf("%w: total_budget must not be negative", domain.ErrValidation)
	}
	return nil
}
