package domain

import "time"

// Session is a cached resolution of a session token to a user snapshot.
// The session provider stays the source of truth; the snapshot only saves a
// round trip per screen render.
type Session struct {
	ID        string    `json:"id"` // user id the token resolved to
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
