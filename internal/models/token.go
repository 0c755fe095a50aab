package models

import "time"

// Token types stored per platform.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenKey identifies the single authoritative token record for one
// (platform, token type) pair.
type TokenKey struct {
	Platform string
	Type     string
}

// TokenRecord is a cached platform credential. A nil ExpiresAt means the
// token does not expire.
type TokenRecord struct {
	Platform  string     `json:"platform"`
	Type      string     `json:"type"`
	Value     string     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Key returns the storage key of the record.
func (t *TokenRecord) Key() TokenKey {
	return TokenKey{Platform: t.Platform, Type: t.Type}
}

// Expired reports whether the token is past its expiry at the given time.
func (t *TokenRecord) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// ExpiresWithin reports whether the token expires within the safety margin.
// An expired token also counts.
func (t *TokenRecord) ExpiresWithin(now time.Time, margin time.Duration) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now.Add(margin))
}
