package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

// CredentialService checks username and password pairs and keeps the failed
// login counter that drives account lockout.
type CredentialService struct {
	Store store.Store

	// Verifier defaults to cryptox.VerifyPassword.
	Verifier func(password, encodedHash string) error
}

// decoyHash is checked against when the username is unknown so that case
// costs as much as a wrong password.
var decoyHash = sync.OnceValue(func() string {
	hash, _ := cryptox.HashPassword("decoy password")
	return hash
})

func (s *CredentialService) verify(password, encodedHash string) error {
	if s.Verifier != nil {
		return s.Verifier(password, encodedHash)
	}
	return cryptox.VerifyPassword(password, encodedHash)
}

// Verify returns the user if the password matches. The checks run in a fixed
// order: unknown user, inactive account, locked account, then the password.
// An unknown user still pays for one hash; a locked account is rejected
// before any. A wrong password bumps
// the failed login counter even though the login itself fails.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.verify(password, decoyHash())
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	if !user.Active {
		return domain.User{}, ErrAccountInactive
	}
	if user.Locked() {
		return domain.User{}, ErrAccountLocked
	}

	if err := s.verify(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, fmt.Errorf("verify password: %w", err)
		}
		if err := s.Store.Users().IncrementLoginAttempts(ctx, user.ID); err != nil {
			return domain.User{}, fmt.Errorf("record failed login: %w", err)
		}
		l.Info("failed login", "user_id", user.ID, "attempts", user.LoginAttempts+1)
		return domain.User{}, ErrWrongPassword
	}

	if cryptox.NeedsRehash(user.PasswordHash) {
		if hash, err := cryptox.HashPassword(password); err == nil {
			if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
				l.Warn("failed to upgrade password hash", "user_id", user.ID, "error", err)
			} else {
				user.PasswordHash = hash
			}
		}
	}

	return user, nil
}

// ResetAttempts clears the failed login counter. Only a successful login
// calls it.
func (s *CredentialService) ResetAttempts(ctx context.Context, userID string) error {
	return resetAttempts(ctx, s.Store, userID)
}

func resetAttempts(ctx context.Context, st store.Store, userID string) error {
	if err := st.Users().ResetLoginAttempts(ctx, userID); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
