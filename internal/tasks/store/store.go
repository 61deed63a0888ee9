package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories per table. Services receive a Store instead of
// reaching for a shared connection, and every multi-step mutation goes
// through Tx or WithTx so the repositories it uses are bound to one
// transaction.
type Store interface {
	Users() Users
	Sessions() Sessions
	Tasks() Tasks
	Images() Images

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it when work outside the database (file moves) has to happen
	// between the last statement and the commit.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It commits when fn returns nil
	// and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. A taken username is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// IncrementLoginAttempts records a failed login.
	IncrementLoginAttempts(ctx context.Context, userID string) error

	// ResetLoginAttempts clears the failed login counter.
	ResetLoginAttempts(ctx context.Context, userID string) error

	// UpdatePasswordHash replaces the stored hash, e.g. after a rehash.
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByAccessHash returns the session holding the access token
	// fingerprint together with its owner's account state.
	GetSessionByAccessHash(ctx context.Context, accessHash string) (domain.SessionAccount, error)

	// GetSessionForRefresh returns the session only if id and both current
	// token fingerprints match.
	GetSessionForRefresh(ctx context.Context, id, accessHash, refreshHash string) (domain.SessionAccount, error)

	// RotateSession replaces the token pair of a session. The old
	// fingerprints are part of the match, so a session that was rotated or
	// deleted in the meantime reports ErrNotFound.
	RotateSession(ctx context.Context, oldAccessHash, oldRefreshHash string, next domain.Session) error

	// DeleteSession removes a session matched by id and access fingerprint.
	// ErrNotFound when nothing matched.
	DeleteSession(ctx context.Context, id, accessHash string) error

	// DeleteExpiredSessions removes sessions whose refresh token expired
	// before now and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTask returns the task only if it belongs to userID.
	GetTask(ctx context.Context, userID, id string) (domain.Task, error)

	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	ListTasksByCompletion(ctx context.Context, userID string, completed domain.Completed) ([]domain.Task, error)
	ListTasksPage(ctx context.Context, userID string, limit, offset int) ([]domain.Task, error)
	CountTasks(ctx context.Context, userID string) (int, error)

	// UpdateTask writes the fields present in patch. ErrNotFound when the
	// task does not exist or belongs to someone else.
	UpdateTask(ctx context.Context, userID, id string, patch domain.TaskPatch) error

	// DeleteTask removes the task row. ErrNotFound when nothing matched.
	DeleteTask(ctx context.Context, userID, id string) error
}

type Images interface {
	// CreateImage inserts an image row. A filename already used in the task
	// is ErrAlreadyExists.
	CreateImage(ctx context.Context, img domain.Image) error

	// GetImage returns the image only if its task belongs to userID.
	GetImage(ctx context.Context, userID, taskID, imageID string) (domain.Image, error)

	// ListImagesByTask returns the images of a task owned by userID.
	ListImagesByTask(ctx context.Context, userID, taskID string) ([]domain.Image, error)

	FilenameExists(ctx context.Context, taskID, filename string) (bool, error)

	// UpdateImage writes the fields present in patch.
	UpdateImage(ctx context.Context, taskID, imageID string, patch domain.ImagePatch) error

	// DeleteImage removes the image row. ErrNotFound when nothing matched.
	DeleteImage(ctx context.Context, taskID, imageID string) error

	// ListFilenames returns every stored filename grouped by task id. Used to
	// reconcile the file store against the database.
	ListFilenames(ctx context.Context) (map[string][]string, error)
}
