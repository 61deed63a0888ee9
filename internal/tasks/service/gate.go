package service

import (
	"context"
	"strings"
)

// AuthGate is the single entry point protected routes use to turn a bearer
// credential into a user id. Missing and blank credentials are rejected
// without touching the database.
type AuthGate struct {
	Sessions *SessionService
}

// Authenticate implements httpx.Authenticator.
func (g *AuthGate) Authenticate(ctx context.Context, token string, present bool) (string, error) {
	if !present {
		return "", ErrAuthMissing
	}
	if strings.TrimSpace(token) == "" {
		return "", ErrAuthBlank
	}

	p, err := g.Sessions.Authenticate(ctx, token)
	if err != nil {
		return "", err
	}
	return p.UserID, nil
}
