package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

const (
	DefaultAccessTTL  = 1200 * time.Second
	DefaultRefreshTTL = 1209600 * time.Second
	DefaultLoginDelay = time.Second
)

// SessionService issues, checks, rotates and revokes access/refresh token
// pairs. A session moves from active to access-expired to refresh-expired,
// or ends early on logout.
type SessionService struct {
	Store       store.Store
	Credentials *CredentialService
	AccessTTL   time.Duration
	RefreshTTL  time.Duration

	// LoginDelay is waited by Throttle before every login attempt to slow
	// down guessing.
	LoginDelay time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return DefaultAccessTTL
	}
	return s.AccessTTL
}

func (s *SessionService) refreshTTL() time.Duration {
	if s.RefreshTTL <= 0 {
		return DefaultRefreshTTL
	}
	return s.RefreshTTL
}

// newTokens mints a token pair for session id and the row that stores its
// fingerprints.
func (s *SessionService) newTokens(id, userID string, now time.Time) (domain.TokenPair, domain.Session, error) {
	access, err := cryptox.GenerateTimestampedToken(cryptox.TokenSize192, now)
	if err != nil {
		return domain.TokenPair{}, domain.Session{}, err
	}
	refresh, err := cryptox.GenerateTimestampedToken(cryptox.TokenSize192, now)
	if err != nil {
		return domain.TokenPair{}, domain.Session{}, err
	}

	pair := domain.TokenPair{
		SessionID:        id,
		AccessToken:      access,
		AccessExpiresIn:  s.accessTTL(),
		RefreshToken:     refresh,
		RefreshExpiresIn: s.refreshTTL(),
	}
	row := domain.Session{
		ID:               id,
		UserID:           userID,
		AccessTokenHash:  cryptox.FingerprintToken(access),
		AccessExpiresAt:  now.Add(s.accessTTL()),
		RefreshTokenHash: cryptox.FingerprintToken(refresh),
		RefreshExpiresAt: now.Add(s.refreshTTL()),
		CreatedAt:        now,
	}
	return pair, row, nil
}

// Create opens a new session for userID.
func (s *SessionService) Create(ctx context.Context, userID string) (domain.TokenPair, error) {
	return s.create(ctx, s.Store, userID)
}

func (s *SessionService) create(ctx context.Context, st store.Store, userID string) (domain.TokenPair, error) {
	pair, row, err := s.newTokens(idx.New().String(), userID, s.now())
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := st.Sessions().CreateSession(ctx, row); err != nil {
		return domain.TokenPair{}, fmt.Errorf("create session: %w", err)
	}
	return pair, nil
}

// Throttle waits LoginDelay or until ctx is done. Every login attempt pays
// it before its request is even parsed.
func (s *SessionService) Throttle(ctx context.Context) error {
	if s.LoginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.LoginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Login verifies the credentials and then resets the failed login counter
// and creates the session in one transaction. Callers Throttle first.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	user, err := s.Credentials.Verify(ctx, username, password)
	if err != nil {
		return domain.TokenPair{}, err
	}

	var pair domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := resetAttempts(ctx, tx, user.ID); err != nil {
			return err
		}
		created, err := s.create(ctx, tx, user.ID)
		if err != nil {
			return err
		}
		pair = created
		return nil
	})
	if err != nil {
		return domain.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("session created", "user_id", user.ID, "session_id", pair.SessionID)
	return pair, nil
}

// Authenticate resolves an access token. The expiry is checked only after
// the session row is found, so an unknown token is never reported as
// expired.
func (s *SessionService) Authenticate(ctx context.Context, accessToken string) (domain.Principal, error) {
	acct, err := s.Store.Sessions().GetSessionByAccessHash(ctx, cryptox.FingerprintToken(accessToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrInvalidAccessToken
		}
		return domain.Principal{}, fmt.Errorf("get session: %w", err)
	}

	switch {
	case !acct.Active:
		return domain.Principal{}, ErrAccountInactive
	case acct.Locked():
		return domain.Principal{}, ErrAccountLocked
	case s.now().After(acct.AccessExpiresAt):
		return domain.Principal{}, ErrAccessTokenExpired
	}

	return domain.Principal{UserID: acct.UserID, SessionID: acct.ID}, nil
}

// Refresh replaces both tokens of a session. The caller must present the
// current pair; a pair that was already rotated matches nothing.
func (s *SessionService) Refresh(
	ctx context.Context,
	sessionID, accessToken, refreshToken string,
) (domain.TokenPair, error) {
	accessHash := cryptox.FingerprintToken(accessToken)
	refreshHash := cryptox.FingerprintToken(refreshToken)
	now := s.now()

	var pair domain.TokenPair
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		acct, err := tx.Sessions().GetSessionForRefresh(ctx, sessionID, accessHash, refreshHash)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidTokens
			}
			return fmt.Errorf("get session: %w", err)
		}

		switch {
		case !acct.Active:
			return ErrAccountInactive
		case acct.Locked():
			return ErrAccountLocked
		case now.After(acct.RefreshExpiresAt):
			return ErrRefreshTokenExpired
		}

		next, row, err := s.newTokens(acct.ID, acct.UserID, now)
		if err != nil {
			return err
		}

		if err := tx.Sessions().RotateSession(ctx, accessHash, refreshHash, row); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrConcurrentModification
			}
			return fmt.Errorf("rotate session: %w", err)
		}

		pair = next
		return nil
	})
	if err != nil {
		return domain.TokenPair{}, err
	}
	return pair, nil
}

// Revoke deletes the session matched by id and access token together.
func (s *SessionService) Revoke(ctx context.Context, sessionID, accessToken string) error {
	err := s.Store.Sessions().DeleteSession(ctx, sessionID, cryptox.FingerprintToken(accessToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
