// Package repo contains all database access logic for the TripSync backend.
// Trips are stored as whole JSON documents — the region tree nests to
// arbitrary depth, so one row per trip keyed by id under a per-user
// namespace mirrors how the mobile client's remote store works.
// No business logic lives here — only SQL and (de)serialization.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tientran/tripsync/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trip documents.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Save upserts the whole trip document under the given user's namespace,
	// keyed by trip.ID.
	Save(ctx context.Context, userID string, trip domain.Trip) error

	// Fetch returns all of the user's trips ordered by created_date
	// descending (display-ordering contract for the client's trip list).
	// Rows whose stored document no longer decodes are skipped and logged
	// rather than failing the whole fetch.
	Fetch(ctx context.Context, userID string) ([]domain.Trip, error)

	// Get retrieves a single trip by id within the user's namespace.
	// Returns domain.ErrNotFound if no such trip exists.
	Get(ctx context.Context, userID string, tripID uuid.UUID) (domain.Trip, error)

	// Delete removes a trip by id within the user's namespace.
	// Returns domain.ErrNotFound if no such trip exists.
	Delete(ctx context.Context, userID string, tripID uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db  db
	log *slog.Logger
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation. The logger records skipped records during Fetch.
func NewTripRepo(db db, log *slog.Logger) TripRepo {
	return &pgTripRepo{db: db, log: log}
}

// Save marshals the trip and upserts it as one JSONB document.
// A second save of the same trip id overwrites the whole document
// (last write wins at the row level; no field-level merge).
// The conflict target is (id, user_id), so saving a trip id that already
// exists under another user creates a separate row in the caller's
// namespace instead of touching the other user's document.
func (r *pgTripRepo) Save(ctx context.Context, userID string, trip domain.Trip) error {
	doc, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Save: marshal: %w", err)
	}

	const q = `
		INSERT INTO trip_documents (id, user_id, created_date, updated_date, doc)
		VALUES (@id, @user_id, @created_date, now(), @doc)
		ON CONFLICT (id, user_id) DO UPDATE
		SET doc = EXCLUDED.doc, updated_date = now()`

	args := pgx.NamedArgs{
		"id":           trip.ID,
		"user_id":      userID,
		"created_date": trip.CreatedDate,
		"doc":          doc,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.TripRepo.Save: %w", err)
	}
	return nil
}

// Fetch returns the user's trips, most recently created first.
func (r *pgTripRepo) Fetch(ctx context.Context, userID string) ([]domain.Trip, error) {
	const q = `
		SELECT id, doc
		FROM trip_documents
		WHERE user_id = @user_id
		ORDER BY created_date DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.Fetch: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		var (
			id  uuid.UUID
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("repo.TripRepo.Fetch: scan: %w", err)
		}
		var trip domain.Trip
		if err := json.Unmarshal(doc, &trip); err != nil {
			// Best effort: a malformed record must not sink the whole batch.
			r.log.WarnContext(ctx, "skipping unparseable trip document",
				"trip_id", id, "user_id", userID, "error", err)
			continue
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.Fetch: rows: %w", err)
	}

	return trips, nil
}

// Get retrieves one trip document by primary key within the user namespace.
func (r *pgTripRepo) Get(ctx context.Context, userID string, tripID uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT doc
		FROM trip_documents
		WHERE id = @id AND user_id = @user_id`

	var doc []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID}).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: %w", err)
	}

	var trip domain.Trip
	if err := json.Unmarshal(doc, &trip); err != nil {
		// Unlike Fetch, a single-record read reports the decode error
		// to the caller instead of pretending the trip does not exist.
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Get: decode: %w", err)
	}
	return trip, nil
}

// Delete removes a trip document by primary key within the user namespace.
func (r *pgTripRepo) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	const q = `DELETE FROM trip_documents WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
