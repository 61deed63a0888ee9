package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, user_id, title, description, deadline, completed, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (domain.Task, error) {
	var (
		t                    domain.Task
		description          sql.NullString
		deadline             sql.NullInt64
		completed            string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &description, &deadline, &completed, &createdAt, &updatedAt); err != nil {
		return domain.Task{}, err
	}
	t.Description = mapNullString(description)
	t.Deadline = mapNullUnix(deadline)
	t.Completed = domain.Completed(completed)
	t.CreatedAt = fromUnix(createdAt)
	t.UpdatedAt = fromUnix(updatedAt)
	return t, nil
}

func (r *tasksRepo) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, mapOptionalString(t.Description), mapOptionalUnix(t.Deadline),
		string(t.Completed), unix(t.CreatedAt), unix(t.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *tasksRepo) GetTask(ctx context.Context, userID, id string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id`, userID)
}

func (r *tasksRepo) ListTasksByCompletion(
	ctx context.Context,
	userID string,
	completed domain.Completed,
) ([]domain.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? AND completed = ? ORDER BY id`,
		userID, string(completed))
}

func (r *tasksRepo) ListTasksPage(ctx context.Context, userID string, limit, offset int) ([]domain.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		userID, limit, offset)
}

func (r *tasksRepo) CountTasks(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// UpdateTask builds its SET clause from fixed column names only; values are
// always bound as parameters.
func (r *tasksRepo) UpdateTask(ctx context.Context, userID, id string, patch domain.TaskPatch) error {
	var (
		sets []string
		args []any
	)
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, unix(*patch.Deadline))
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, string(*patch.Completed))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, unix(time.Now()), id, userID)

	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
