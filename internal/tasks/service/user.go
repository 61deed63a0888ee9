package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// Register creates an active account. A taken username is ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		FullName:     reg.FullName,
		Username:     reg.Username,
		PasswordHash: hash,
		Active:       true,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, reg.Username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check username: %w", err)
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}
