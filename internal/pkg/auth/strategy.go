package auth

import "time"

// Strategy issues and verifies bearer tokens carrying a user id.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	// ParseToken returns ErrInvalidToken for forged, malformed or expired tokens.
	ParseToken(token string) (int64, error)
	TTL() time.Duration
	Name() string
}

// Options configures token strategies.
type Options struct {
	TTL time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}
