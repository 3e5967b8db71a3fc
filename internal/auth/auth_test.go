package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tientran/tripsync/backend/internal/auth"
)

// ---- session duration tests -------------------------------------------------

func TestParseSessionDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    auth.SessionDuration
		wantErr bool
	}{
		{"1h", auth.SessionOneHour, false},
		{"1d", auth.SessionOneDay, false},
		{"3d", auth.SessionThreeDays, false},
		{"1w", auth.SessionOneWeek, false},
		{"1mo", auth.SessionOneMonth, false},
		{"3mo", auth.SessionThreeMonths, false},
		{"never", auth.SessionNever, false},
		{"2h", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := auth.ParseSessionDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionDuration_TTL(t *testing.T) {
	ttl, ok := auth.SessionOneWeek.TTL()
	require.True(t, ok)
	assert.Equal(t, 7*24*time.Hour, ttl)

	// "never" has no concrete length: tokens carry no expiry claim.
	_, ok = auth.SessionNever.TTL()
	assert.False(t, ok)
}

// ---- token tests ------------------------------------------------------------

func TestIssuer_IssueVerifyRoundTrip(t *testing.T) {
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionOneHour)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionOneHour)
	other := auth.NewIssuer([]byte("different-secret"), auth.SessionOneHour)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssuer_Verify_Garbage(t *testing.T) {
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionOneHour)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssuer_NeverSessionsVerify(t *testing.T) {
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionNever)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

// ---- middleware tests --------------------------------------------------------

func TestRequireAuth(t *testing.T) {
	issuer := auth.NewIssuer([]byte("test-secret"), auth.SessionOneHour)
	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = auth.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := auth.RequireAuth(issuer)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{"valid token", "Bearer " + token, http.StatusNoContent, "alice"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized, ""},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/trips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, gotUserID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t,
					`{"error":{"code":"unauthorized","message":"missing or invalid credentials"}}`,
					rec.Body.String())
			}
		})
	}
}

// ---- static checker tests ----------------------------------------------------

func TestStaticChecker_Authenticate(t *testing.T) {
	checker := auth.StaticChecker{"alice": "s3cret"}

	userID, err := checker.Authenticate(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)

	_, err = checker.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrBadCredentials)

	_, err = checker.Authenticate(context.Background(), "bob", "s3cret")
	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}
