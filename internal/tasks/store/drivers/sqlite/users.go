package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, full_name, username, password_hash, is_active, login_attempts, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                    domain.User
		active               int
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.FullName, &u.Username, &u.PasswordHash, &active, &u.LoginAttempts, &createdAt, &updatedAt); err != nil {
		return domain.User{}, err
	}
	u.Active = active == 1
	u.CreatedAt = fromUnix(createdAt)
	u.UpdatedAt = fromUnix(updatedAt)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FullName, u.Username, u.PasswordHash, boolInt(u.Active), u.LoginAttempts,
		unix(u.CreatedAt), unix(u.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) IncrementLoginAttempts(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET login_attempts = login_attempts + 1, updated_at = ? WHERE id = ?`,
		unix(time.Now()), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) ResetLoginAttempts(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET login_attempts = 0, updated_at = ? WHERE id = ?`,
		unix(time.Now()), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, unix(time.Now()), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
