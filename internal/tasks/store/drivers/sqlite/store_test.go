package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "tasks.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	// Applying twice is a no-op.
	require.NoError(t, st.ApplyMigrations())
	return st
}

func createUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		FullName:     "Test " + username,
		Username:     username,
		PasswordHash: "hash",
		Active:       true,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func createTask(t *testing.T, st store.Store, userID, title string) domain.Task {
	t.Helper()
	task := domain.Task{
		ID:        idx.New().String(),
		UserID:    userID,
		Title:     title,
		Completed: domain.CompletedNo,
	}
	require.NoError(t, st.Tasks().CreateTask(context.Background(), task))
	return task
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := createUser(t, st, "jane")

	got, err := st.Users().GetUserByUsername(ctx, "JANE")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.True(t, got.Active)
	require.Zero(t, got.LoginAttempts)

	dup := u
	dup.ID = idx.New().String()
	dup.Username = "Jane"
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	for range 3 {
		require.NoError(t, st.Users().IncrementLoginAttempts(ctx, u.ID))
	}
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.LoginAttempts)
	require.True(t, got.Locked())

	require.NoError(t, st.Users().ResetLoginAttempts(ctx, u.ID))
	require.NoError(t, st.Users().UpdatePasswordHash(ctx, u.ID, "new-hash"))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, got.LoginAttempts)
	require.Equal(t, "new-hash", got.PasswordHash)

	_, err = st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, st.Users().IncrementLoginAttempts(ctx, "missing"), store.ErrNotFound)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := createUser(t, st, "jane")
	now := time.Now().UTC().Truncate(time.Second)

	sess := domain.Session{
		ID:               idx.New().String(),
		UserID:           u.ID,
		AccessTokenHash:  "a1",
		AccessExpiresAt:  now.Add(20 * time.Minute),
		RefreshTokenHash: "r1",
		RefreshExpiresAt: now.Add(14 * 24 * time.Hour),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, sess))

	t.Run("lookup by access hash joins account state", func(t *testing.T) {
		got, err := st.Sessions().GetSessionByAccessHash(ctx, "a1")
		require.NoError(t, err)
		require.Equal(t, sess.ID, got.ID)
		require.Equal(t, u.ID, got.UserID)
		require.True(t, got.Active)
		require.Equal(t, sess.AccessExpiresAt, got.AccessExpiresAt)

		_, err = st.Sessions().GetSessionByAccessHash(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("refresh lookup needs both hashes", func(t *testing.T) {
		_, err := st.Sessions().GetSessionForRefresh(ctx, sess.ID, "a1", "r1")
		require.NoError(t, err)

		_, err = st.Sessions().GetSessionForRefresh(ctx, sess.ID, "a1", "other")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rotate matches old hashes", func(t *testing.T) {
		next := sess
		next.AccessTokenHash = "a2"
		next.RefreshTokenHash = "r2"
		require.NoError(t, st.Sessions().RotateSession(ctx, "a1", "r1", next))

		// The same stale pair cannot rotate again.
		stale := sess
		stale.AccessTokenHash = "a3"
		stale.RefreshTokenHash = "r3"
		require.ErrorIs(t, st.Sessions().RotateSession(ctx, "a1", "r1", stale), store.ErrNotFound)

		_, err := st.Sessions().GetSessionByAccessHash(ctx, "a1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete needs id and access hash", func(t *testing.T) {
		require.ErrorIs(t, st.Sessions().DeleteSession(ctx, sess.ID, "a1"), store.ErrNotFound)
		require.NoError(t, st.Sessions().DeleteSession(ctx, sess.ID, "a2"))
		require.ErrorIs(t, st.Sessions().DeleteSession(ctx, sess.ID, "a2"), store.ErrNotFound)
	})

	t.Run("expired sessions are purged", func(t *testing.T) {
		old := domain.Session{
			ID:               idx.New().String(),
			UserID:           u.ID,
			AccessTokenHash:  "old-a",
			AccessExpiresAt:  now.Add(-48 * time.Hour),
			RefreshTokenHash: "old-r",
			RefreshExpiresAt: now.Add(-time.Hour),
		}
		require.NoError(t, st.Sessions().CreateSession(ctx, old))

		n, err := st.Sessions().DeleteExpiredSessions(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

func TestTasks(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	var ids []string
	for i := range 7 {
		ids = append(ids, createTask(t, st, alice.ID, "task "+string(rune('a'+i))).ID)
	}
	createTask(t, st, bob.ID, "bob's")

	t.Run("scoped by owner", func(t *testing.T) {
		_, err := st.Tasks().GetTask(ctx, bob.ID, ids[0])
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, st.Tasks().DeleteTask(ctx, bob.ID, ids[0]), store.ErrNotFound)

		title := "hijack"
		require.ErrorIs(t, st.Tasks().UpdateTask(ctx, bob.ID, ids[0], domain.TaskPatch{Title: &title}), store.ErrNotFound)
	})

	t.Run("count and pages", func(t *testing.T) {
		n, err := st.Tasks().CountTasks(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, 7, n)

		page, err := st.Tasks().ListTasksPage(ctx, alice.ID, 5, 5)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, ids[5], page[0].ID)
		require.Equal(t, ids[6], page[1].ID)
	})

	t.Run("patch touches only present fields", func(t *testing.T) {
		desc := "details"
		deadline := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
		yes := domain.CompletedYes
		require.NoError(t, st.Tasks().UpdateTask(ctx, alice.ID, ids[0], domain.TaskPatch{
			Description: &desc,
			Deadline:    &deadline,
			Completed:   &yes,
		}))

		got, err := st.Tasks().GetTask(ctx, alice.ID, ids[0])
		require.NoError(t, err)
		require.Equal(t, "task a", got.Title)
		require.Equal(t, "details", *got.Description)
		require.Equal(t, deadline, *got.Deadline)
		require.Equal(t, domain.CompletedYes, got.Completed)

		done, err := st.Tasks().ListTasksByCompletion(ctx, alice.ID, domain.CompletedYes)
		require.NoError(t, err)
		require.Len(t, done, 1)

		all, err := st.Tasks().ListTasks(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, all, 7)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, st.Tasks().DeleteTask(ctx, alice.ID, ids[6]))
		_, err := st.Tasks().GetTask(ctx, alice.ID, ids[6])
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestImages(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	task := createTask(t, st, alice.ID, "with images")

	img := domain.Image{
		ID:       idx.New().String(),
		TaskID:   task.ID,
		Title:    "Diagram",
		Filename: "diagram.png",
		MimeType: "image/png",
	}
	require.NoError(t, st.Images().CreateImage(ctx, img))

	dup := img
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Images().CreateImage(ctx, dup), store.ErrAlreadyExists)

	exists, err := st.Images().FilenameExists(ctx, task.ID, "diagram.png")
	require.NoError(t, err)
	require.True(t, exists)

	got, err := st.Images().GetImage(ctx, alice.ID, task.ID, img.ID)
	require.NoError(t, err)
	require.Equal(t, img.Filename, got.Filename)

	_, err = st.Images().GetImage(ctx, bob.ID, task.ID, img.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err := st.Images().ListImagesByTask(ctx, bob.ID, task.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	filename := "sketch.png"
	require.NoError(t, st.Images().UpdateImage(ctx, task.ID, img.ID, domain.ImagePatch{Filename: &filename}))

	files, err := st.Images().ListFilenames(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string][]string{task.ID: {"sketch.png"}}, files)

	require.NoError(t, st.Images().DeleteImage(ctx, task.ID, img.ID))
	require.ErrorIs(t, st.Images().DeleteImage(ctx, task.ID, img.ID), store.ErrNotFound)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := createUser(t, st, "alice")

	boom := errors.New("boom")
	var taskID string
	err := st.WithTx(ctx, func(tx store.Tx) error {
		taskID = createTask(t, tx, u.ID, "rolled back").ID
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Tasks().GetTask(ctx, u.ID, taskID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTx_CommitThenRollbackIsHarmless(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := createUser(t, st, "alice")

	tx, err := st.Tx(ctx)
	require.NoError(t, err)
	task := createTask(t, tx, u.ID, "kept")
	require.NoError(t, tx.Commit())
	_ = tx.Rollback()

	_, err = st.Tasks().GetTask(ctx, u.ID, task.ID)
	require.NoError(t, err)

	_, err = tx.Tx(ctx)
	require.Error(t, err)
}
