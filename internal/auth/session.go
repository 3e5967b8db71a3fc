// Package auth implements the session layer for the TripSync backend:
// a fixed menu of session durations, HS256 JWT issue/verify, and the chi
// middleware that extracts the authenticated user id. The domain model never
// sees credentials — only the user id string this package puts in context.
package auth

import (
	"fmt"
	"time"
)

// SessionDuration is how long an issued session stays valid.
// Closed set matching the client's session-length picker.
type SessionDuration string

const (
	SessionOneHour     SessionDuration = "1h"
	SessionOneDay      SessionDuration = "1d"
	SessionThreeDays   SessionDuration = "3d"
	SessionOneWeek     SessionDuration = "1w"
	SessionOneMonth    SessionDuration = "1mo"
	SessionThreeMonths SessionDuration = "3mo"
	SessionNever       SessionDuration = "never"
)

// sessionTTLs maps each duration to its concrete length.
// SessionNever is absent: tokens issued under it carry no expiry claim.
var sessionTTLs = map[SessionDuration]time.Duration{
	SessionOneHour:     time.Hour,
	SessionOneDay:      24 * time.Hour,
	SessionThreeDays:   3 * 24 * time.Hour,
	SessionOneWeek:     7 * 24 * time.Hour,
	SessionOneMonth:    30 * 24 * time.Hour,
	SessionThreeMonths: 90 * 24 * time.Hour,
}

// ParseSessionDuration validates a duration string from config or a request.
func ParseSessionDuration(s string) (SessionDuration, error) {
	d := SessionDuration(s)
	if d == SessionNever {
		return d, nil
	}
	if _, ok := sessionTTLs[d]; !ok {
		return "", fmt.Errorf("invalid session duration %q", s)
	}
	return d, nil
}

// TTL returns the concrete duration and true, or zero and false for
// SessionNever (sessions that do not expire).
func (d SessionDuration) TTL() (time.Duration, bool) {
	ttl, ok := sessionTTLs[d]
	return ttl, ok
}
