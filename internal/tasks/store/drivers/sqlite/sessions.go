package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

type sessionsRepo struct {
	db dbtx
}

const sessionAccountSelect = `
SELECT s.id, s.user_id, s.access_token_hash, s.access_expires_at,
       s.refresh_token_hash, s.refresh_expires_at, s.created_at, s.updated_at,
       u.is_active, u.login_attempts
FROM sessions s
JOIN users u ON u.id = s.user_id`

func scanSessionAccount(row interface{ Scan(...any) error }) (domain.SessionAccount, error) {
	var (
		a                     domain.SessionAccount
		accessExp, refreshExp int64
		createdAt, updatedAt  int64
		active                int
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.AccessTokenHash, &accessExp,
		&a.RefreshTokenHash, &refreshExp, &createdAt, &updatedAt,
		&active, &a.LoginAttempts,
	)
	if err != nil {
		return domain.SessionAccount{}, err
	}

	a.AccessExpiresAt = fromUnix(accessExp)
	a.RefreshExpiresAt = fromUnix(refreshExp)
	a.CreatedAt = fromUnix(createdAt)
	a.UpdatedAt = fromUnix(updatedAt)
	a.Active = active == 1
	return a, nil
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (id, user_id, access_token_hash, access_expires_at,
                      refresh_token_hash, refresh_expires_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.AccessTokenHash, unix(s.AccessExpiresAt),
		s.RefreshTokenHash, unix(s.RefreshExpiresAt), unix(s.CreatedAt), unix(s.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByAccessHash(ctx context.Context, accessHash string) (domain.SessionAccount, error) {
	a, err := scanSessionAccount(r.db.QueryRowContext(ctx,
		sessionAccountSelect+` WHERE s.access_token_hash = ?`, accessHash))
	if err != nil {
		return domain.SessionAccount{}, mapNotFound(err)
	}
	return a, nil
}

func (r *sessionsRepo) GetSessionForRefresh(
	ctx context.Context,
	id, accessHash, refreshHash string,
) (domain.SessionAccount, error) {
	a, err := scanSessionAccount(r.db.QueryRowContext(ctx,
		sessionAccountSelect+` WHERE s.id = ? AND s.access_token_hash = ? AND s.refresh_token_hash = ?`,
		id, accessHash, refreshHash))
	if err != nil {
		return domain.SessionAccount{}, mapNotFound(err)
	}
	return a, nil
}

func (r *sessionsRepo) RotateSession(
	ctx context.Context,
	oldAccessHash, oldRefreshHash string,
	next domain.Session,
) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE sessions
SET access_token_hash = ?, access_expires_at = ?,
    refresh_token_hash = ?, refresh_expires_at = ?, updated_at = ?
WHERE id = ? AND access_token_hash = ? AND refresh_token_hash = ?`,
		next.AccessTokenHash, unix(next.AccessExpiresAt),
		next.RefreshTokenHash, unix(next.RefreshExpiresAt), unix(time.Now()),
		next.ID, oldAccessHash, oldRefreshHash,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id, accessHash string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE id = ? AND access_token_hash = ?`, id, accessHash)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE refresh_expires_at < ?`, unix(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
