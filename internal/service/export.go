package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tientran/tripsync/backend/internal/domain"
	"github.com/tientran/tripsync/backend/internal/repo"
)

// ExportService assembles the flat, date-ordered timeline of a trip for the
// itinerary export endpoint.
type ExportService struct {
	repo repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(r repo.TripRepo) *ExportService {
	return &ExportService{repo: r}
}

// Timeline returns one entry per dated itinerary item of the trip.
// Always returns a non-nil slice so callers can safely range over it.
// Returns domain.ErrNotFound if the user has no trip with that id.
func (s *ExportService) Timeline(ctx context.Context, userID string, tripID uuid.UUID) ([]domain.TimelineEntry, error) {
	trip, err := s.repo.Get(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Timeline: %w", err)
	}
	entries := domain.BuildTimeline(trip)
	if entries == nil {
		return []domain.TimelineEntry{}, nil
	}
	return entries, nil
}
