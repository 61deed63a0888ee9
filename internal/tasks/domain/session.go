package domain

import "time"

// Session is a stored login. Only fingerprints of the tokens are kept.
type Session struct {
	ID               string
	UserID           string
	AccessTokenHash  string
	AccessExpiresAt  time.Time
	RefreshTokenHash string
	RefreshExpiresAt time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SessionAccount is a session joined with the account state of its owner,
// which every token check needs.
type SessionAccount struct {
	Session
	Active        bool
	LoginAttempts int
}

// Locked mirrors User.Locked for the joined row.
func (a SessionAccount) Locked() bool { return a.LoginAttempts > MaxLoginAttempts }

// TokenPair is what a login or refresh hands back to the client. This is the
// only place the plaintext tokens exist.
type TokenPair struct {
	SessionID        string
	AccessToken      string
	AccessExpiresIn  time.Duration
	RefreshToken     string
	RefreshExpiresIn time.Duration
}

// Principal is the identity established for an authenticated request.
type Principal struct {
	UserID    string
	SessionID string
}
