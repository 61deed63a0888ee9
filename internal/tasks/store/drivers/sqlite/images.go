package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

type imagesRepo struct {
	db dbtx
}

const imageColumns = `i.id, i.task_id, i.title, i.filename, i.mime_type, i.created_at`

func scanImage(row interface{ Scan(...any) error }) (domain.Image, error) {
	var (
		img       domain.Image
		createdAt int64
	)
	if err := row.Scan(&img.ID, &img.TaskID, &img.Title, &img.Filename, &img.MimeType, &createdAt); err != nil {
		return domain.Image{}, err
	}
	img.CreatedAt = fromUnix(createdAt)
	return img, nil
}

func (r *imagesRepo) CreateImage(ctx context.Context, img domain.Image) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO images (id, task_id, title, filename, mime_type, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		img.ID, img.TaskID, img.Title, img.Filename, img.MimeType, unix(img.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *imagesRepo) GetImage(ctx context.Context, userID, taskID, imageID string) (domain.Image, error) {
	img, err := scanImage(r.db.QueryRowContext(ctx, `
SELECT `+imageColumns+`
FROM images i
JOIN tasks t ON t.id = i.task_id
WHERE i.id = ? AND i.task_id = ? AND t.user_id = ?`,
		imageID, taskID, userID))
	if err != nil {
		return domain.Image{}, mapNotFound(err)
	}
	return img, nil
}

func (r *imagesRepo) ListImagesByTask(ctx context.Context, userID, taskID string) ([]domain.Image, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+imageColumns+`
FROM images i
JOIN tasks t ON t.id = i.task_id
WHERE i.task_id = ? AND t.user_id = ?
ORDER BY i.id`,
		taskID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *imagesRepo) FilenameExists(ctx context.Context, taskID, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM images WHERE task_id = ? AND filename = ?)`,
		taskID, filename).Scan(&exists)
	return exists, err
}

func (r *imagesRepo) UpdateImage(ctx context.Context, taskID, imageID string, patch domain.ImagePatch) error {
	var (
		sets []string
		args []any
	)
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Filename != nil {
		sets = append(sets, "filename = ?")
		args = append(args, *patch.Filename)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, imageID, taskID)

	res, err := r.db.ExecContext(ctx,
		`UPDATE images SET `+strings.Join(sets, ", ")+` WHERE id = ? AND task_id = ?`, args...)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *imagesRepo) DeleteImage(ctx context.Context, taskID, imageID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ? AND task_id = ?`, imageID, taskID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *imagesRepo) ListFilenames(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id, filename FROM images ORDER BY task_id, filename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var taskID, filename string
		if err := rows.Scan(&taskID, &filename); err != nil {
			return nil, err
		}
		out[taskID] = append(out[taskID], filename)
	}
	return out, rows.Err()
}
