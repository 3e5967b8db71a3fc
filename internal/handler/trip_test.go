package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tientran/tripsync/backend/internal/auth"
	"github.com/tientran/tripsync/backend/internal/domain"
	"github.com/tientran/tripsync/backend/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	save           func(ctx context.Context, userID string, trip domain.Trip) (domain.Trip, error)
	get            func(ctx context.Context, userID string, tripID uuid.UUID) (domain.Trip, error)
	list           func(ctx context.Context, userID string) ([]domain.Trip, error)
	delete         func(ctx context.Context, userID string, tripID uuid.UUID) error
	summary        func(ctx context.Context, userID string, tripID uuid.UUID) (domain.TripSummary, error)
	ensureSeedData func(ctx context.Context, userID string) (int, error)
}

func (m *mockTripServicer) Save(ctx context.Context, userID string, trip domain.Trip) (domain.Trip, error) {
	return m.save(ctx, userID, trip)
}
func (m *mockTripServicer) Get(ctx context.Context, userID string, tripID uuid.UUID) (domain.Trip, error) {
	return m.get(ctx, userID, tripID)
}
func (m *mockTripServicer) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	return m.list(ctx, userID)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID string, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}
func (m *mockTripServicer) Summary(ctx context.Context, userID string, tripID uuid.UUID) (domain.TripSummary, error) {
	return m.summary(ctx, userID, tripID)
}
func (m *mockTripServicer) EnsureSeedData(ctx context.Context, userID string) (int, error) {
	return m.ensureSeedData(ctx, userID)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	timeline func(ctx context.Context, userID string, tripID uuid.UUID) ([]domain.TimelineEntry, error)
}

func (m *mockExportServicer) Timeline(ctx context.Context, userID string, tripID uuid.UUID) ([]domain.TimelineEntry, error) {
	return m.timeline(ctx, userID, tripID)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// mockForexServicer is a test double for handler.ForexServicer.
type mockForexServicer struct {
	snapshot func(ctx context.Context, baseCurrency string) (domain.ForexSnapshot, error)
}

func (m *mockForexServicer) Snapshot(ctx context.Context, baseCurrency string) (domain.ForexSnapshot, error) {
	return m.snapshot(ctx, baseCurrency)
}

var _ handler.ForexServicer = (*mockForexServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the router, exactly
// as main.go does in production, and returns an Authorization header value
// carrying a valid session for user "alice".
func newHTTPHandler(t *testing.T, trips handler.TripServicer, export handler.ExportServicer) (http.Handler, string) {
	t.Helper()
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionOneHour)
	token, err := issuer.Issue("alice")
	require.NoError(t, err)
	srv := handler.NewServer(trips, export, nil, issuer, auth.StaticChecker{"alice": "s3cret"})
	return srv.Routes(), "Bearer " + token
}

func doRequest(h http.Handler, method, target, authHeader string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tripFixture(t *testing.T) domain.Trip {
	t.Helper()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	trip, err := domain.NewTrip("Vietnam Adventure", start, start.AddDate(0, 0, 14), "Australia")
	require.NoError(t, err)
	require.NoError(t, trip.SetBudget(decimal.NewFromInt(3500)))
	return trip
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	var gotUserID string
	svc := &mockTripServicer{
		save: func(_ context.Context, userID string, trip domain.Trip) (domain.Trip, error) {
			gotUserID = userID
			return trip, nil
		},
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	body := jsonBody(t, map[string]any{
		"title":            "Vietnam Adventure",
		"start_date":       "2026-03-01",
		"end_date":         "2026-03-15",
		"target_countries": []string{"Vietnam"},
		"total_budget":     "3500",
	})
	rec := doRequest(h, http.MethodPost, "/trips/", authHeader, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", gotUserID)

	var created domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Vietnam Adventure", created.Title)
	assert.True(t, created.IsInternational)
	require.NotNil(t, created.TotalBudget)
	assert.True(t, created.TotalBudget.Equal(decimal.NewFromInt(3500)))
}

func TestCreateTrip_FreezesForexSnapshot(t *testing.T) {
	snap := domain.NewForexSnapshot("AUD")
	snap.Rates["VND"] = decimal.RequireFromString("16000")
	forex := &mockForexServicer{
		snapshot: func(_ context.Context, base string) (domain.ForexSnapshot, error) {
			assert.Equal(t, "AUD", base)
			return snap, nil
		},
	}
	svc := &mockTripServicer{
		save: func(_ context.Context, _ string, trip domain.Trip) (domain.Trip, error) { return trip, nil },
	}
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionOneHour)
	token, err := issuer.Issue("alice")
	require.NoError(t, err)
	h := handler.NewServer(svc, nil, forex, issuer, nil).Routes()

	body := jsonBody(t, map[string]any{
		"title":      "Vietnam Adventure",
		"start_date": "2026-03-01",
		"end_date":   "2026-03-15",
	})
	rec := doRequest(h, http.MethodPost, "/trips/", "Bearer "+token, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	rate, ok := created.ForexRate.Rate("VND")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(16000)))
}

func TestCreateTrip_422_EndBeforeStart(t *testing.T) {
	h, authHeader := newHTTPHandler(t, &mockTripServicer{}, nil)

	body := jsonBody(t, map[string]any{
		"title":      "Backwards",
		"start_date": "2026-03-15",
		"end_date":   "2026-03-01",
	})
	rec := doRequest(h, http.MethodPost, "/trips/", authHeader, body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "end_date")
}

func TestCreateTrip_400_BadBudget(t *testing.T) {
	h, authHeader := newHTTPHandler(t, &mockTripServicer{}, nil)

	body := jsonBody(t, map[string]any{
		"title":        "Trip",
		"start_date":   "2026-03-01",
		"end_date":     "2026-03-15",
		"total_budget": "lots",
	})
	rec := doRequest(h, http.MethodPost, "/trips/", authHeader, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTrip_401_WithoutToken(t *testing.T) {
	h, _ := newHTTPHandler(t, &mockTripServicer{}, nil)

	rec := doRequest(h, http.MethodPost, "/trips/", "", jsonBody(t, map[string]any{"title": "x"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200_Paginated(t *testing.T) {
	trips := make([]domain.Trip, 0, 3)
	for _, title := range []string{"First", "Second", "Third"} {
		trip := tripFixture(t)
		trip.Title = title
		trips = append(trips, trip)
	}
	svc := &mockTripServicer{
		list: func(_ context.Context, _ string) ([]domain.Trip, error) { return trips, nil },
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodGet, "/trips/?page=2&limit=2", authHeader, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.TripListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Third", resp.Data[0].Title)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestListTrips_200_Empty(t *testing.T) {
	svc := &mockTripServicer{
		list: func(_ context.Context, _ string) ([]domain.Trip, error) { return []domain.Trip{}, nil },
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodGet, "/trips/", authHeader, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	// data must serialize as [] rather than null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture(t)
	svc := &mockTripServicer{
		get: func(_ context.Context, _ string, tripID uuid.UUID) (domain.Trip, error) {
			require.Equal(t, fixture.ID, tripID)
			return fixture, nil
		},
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodGet, "/trips/"+fixture.ID.String(), authHeader, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fixture.ID, got.ID)
	assert.Equal(t, fixture.Title, got.Title)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		get: func(_ context.Context, _ string, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodGet, "/trips/"+uuid.NewString(), authHeader, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTrip_400_BadID(t *testing.T) {
	h, authHeader := newHTTPHandler(t, &mockTripServicer{}, nil)

	rec := doRequest(h, http.MethodGet, "/trips/not-a-uuid", authHeader, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- PUT /trips/{id} -------------------------------------------------------

func TestUpdateTrip_200_PathIDWins(t *testing.T) {
	fixture := tripFixture(t)
	pathID := uuid.New()
	var saved domain.Trip
	svc := &mockTripServicer{
		save: func(_ context.Context, _ string, trip domain.Trip) (domain.Trip, error) {
			saved = trip
			return trip, nil
		},
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodPut, "/trips/"+pathID.String(), authHeader, jsonBody(t, fixture))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pathID, saved.ID)
	assert.True(t, saved.LastModified.After(fixture.LastModified))
}

// ---- DELETE /trips/{id} ----------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error { return nil },
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodDelete, "/trips/"+uuid.NewString(), authHeader, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodDelete, "/trips/"+uuid.NewString(), authHeader, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{id}/summary -----------------------------------------------

func TestGetTripSummary_200(t *testing.T) {
	fixture := tripFixture(t)
	svc := &mockTripServicer{
		summary: func(_ context.Context, _ string, _ uuid.UUID) (domain.TripSummary, error) {
			return domain.Summarize(fixture), nil
		},
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodGet, "/trips/"+fixture.ID.String()+"/summary", authHeader, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.TripSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, fixture.ID, summary.TripID)
	assert.Equal(t, 15, summary.DurationDays)
}

// ---- POST /seed ------------------------------------------------------------

func TestSeed_200(t *testing.T) {
	svc := &mockTripServicer{
		ensureSeedData: func(_ context.Context, userID string) (int, error) {
			assert.Equal(t, "alice", userID)
			return 5, nil
		},
	}
	h, authHeader := newHTTPHandler(t, svc, nil)

	rec := doRequest(h, http.MethodPost, "/seed", authHeader, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"seeded":5}`, rec.Body.String())
}

// ---- GET /healthz ----------------------------------------------------------

func TestGetHealth_200_NoAuthRequired(t *testing.T) {
	h, _ := newHTTPHandler(t, &mockTripServicer{}, nil)

	rec := doRequest(h, http.MethodGet, "/healthz", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
