package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

// TaskService manages the tasks of a single user. Every query is scoped by
// the caller's user id; a task owned by someone else is ErrTaskNotFound.
type TaskService struct {
	Store  store.Store
	Images *ImageService
	Files  FileStore

	// PageSize defaults to DefaultPageSize.
	PageSize int
}

// TaskPage is one page of a user's tasks.
type TaskPage struct {
	Tasks     []domain.TaskDetail
	TotalRows int
	Page      Page
}

func (s *TaskService) pageSize() int {
	if s.PageSize <= 0 {
		return DefaultPageSize
	}
	return s.PageSize
}

// detail loads the images of t through st.
func detail(ctx context.Context, st store.Store, t domain.Task) (domain.TaskDetail, error) {
	images, err := st.Images().ListImagesByTask(ctx, t.UserID, t.ID)
	if err != nil {
		return domain.TaskDetail{}, fmt.Errorf("list images: %w", err)
	}
	return domain.TaskDetail{Task: t, Images: images}, nil
}

func details(ctx context.Context, st store.Store, tasks []domain.Task) ([]domain.TaskDetail, error) {
	out := make([]domain.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		d, err := detail(ctx, st, t)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Create stores a new task for userID and returns it as read back.
func (s *TaskService) Create(ctx context.Context, userID string, f domain.TaskFields) (domain.TaskDetail, error) {
	t, err := domain.NewTask(userID, f)
	if err != nil {
		return domain.TaskDetail{}, err
	}
	t.ID = idx.New().String()

	var created domain.TaskDetail
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().CreateTask(ctx, t); err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		stored, err := tx.Tasks().GetTask(ctx, userID, t.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrReadAfterWrite
			}
			return fmt.Errorf("reread task: %w", err)
		}

		created = domain.TaskDetail{Task: stored, Images: []domain.Image{}}
		return nil
	})
	if err != nil {
		return domain.TaskDetail{}, err
	}

	slogx.FromContext(ctx).Info("task created", "user_id", userID, "task_id", t.ID)
	return created, nil
}

// Get returns one task with its images.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (domain.TaskDetail, error) {
	t, err := s.Store.Tasks().GetTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TaskDetail{}, ErrTaskNotFound
		}
		return domain.TaskDetail{}, fmt.Errorf("get task: %w", err)
	}
	return detail(ctx, s.Store, t)
}

// RequireOwned reports ErrTaskNotFound unless taskID exists and belongs to
// userID.
func (s *TaskService) RequireOwned(ctx context.Context, userID, taskID string) error {
	if _, err := s.Store.Tasks().GetTask(ctx, userID, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("get task: %w", err)
	}
	return nil
}

// Update applies the fields present in f and returns the task as read back.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, f domain.TaskFields) (domain.TaskDetail, error) {
	patch, err := domain.NewTaskPatch(f)
	if err != nil {
		return domain.TaskDetail{}, err
	}

	var updated domain.TaskDetail
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Tasks().GetTask(ctx, userID, taskID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("get task: %w", err)
		}

		if err := tx.Tasks().UpdateTask(ctx, userID, taskID, patch); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("update task: %w", err)
		}

		stored, err := tx.Tasks().GetTask(ctx, userID, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrReadAfterWrite
			}
			return fmt.Errorf("reread task: %w", err)
		}

		updated, err = detail(ctx, tx, stored)
		return err
	})
	if err != nil {
		return domain.TaskDetail{}, err
	}
	return updated, nil
}

// List returns every task of userID.
func (s *TaskService) List(ctx context.Context, userID string) ([]domain.TaskDetail, error) {
	tasks, err := s.Store.Tasks().ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return details(ctx, s.Store, tasks)
}

// ListByCompletion returns the tasks of userID whose completed flag is
// completed ("Y" or "N").
func (s *TaskService) ListByCompletion(ctx context.Context, userID, completed string) ([]domain.TaskDetail, error) {
	c, ok := domain.ParseCompleted(completed)
	if !ok {
		return nil, ErrInvalidCompleted
	}

	tasks, err := s.Store.Tasks().ListTasksByCompletion(ctx, userID, c)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return details(ctx, s.Store, tasks)
}

// ListPage returns page (1-based) of userID's tasks. A page outside the
// listing is ErrPageNotFound.
func (s *TaskService) ListPage(ctx context.Context, userID string, page int) (TaskPage, error) {
	total, err := s.Store.Tasks().CountTasks(ctx, userID)
	if err != nil {
		return TaskPage{}, fmt.Errorf("count tasks: %w", err)
	}

	p, err := Paginate(total, page, s.pageSize())
	if err != nil {
		return TaskPage{}, err
	}

	tasks, err := s.Store.Tasks().ListTasksPage(ctx, userID, p.Limit, p.Offset)
	if err != nil {
		return TaskPage{}, fmt.Errorf("list tasks: %w", err)
	}

	out, err := details(ctx, s.Store, tasks)
	if err != nil {
		return TaskPage{}, err
	}
	return TaskPage{Tasks: out, TotalRows: total, Page: p}, nil
}

// Delete removes a task and everything attached to it. Each image is deleted
// as its own unit; the task row goes only once all of them are gone, and the
// task folder after that.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	l := slogx.FromContext(ctx)

	if err := s.RequireOwned(ctx, userID, taskID); err != nil {
		return err
	}

	images, err := s.Store.Images().ListImagesByTask(ctx, userID, taskID)
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}

	for _, img := range images {
		if err := s.Images.Delete(ctx, userID, taskID, img.ID); err != nil && !errors.Is(err, ErrImageNotFound) {
			l.Error("task delete stopped at image", "task_id", taskID, "image_id", img.ID, "error", err)
			return err
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().DeleteTask(ctx, userID, taskID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.Files.RemoveDir(taskID); err != nil {
		l.Warn("failed to remove task folder", "task_id", taskID, "error", err)
	}

	l.Info("task deleted", "user_id", userID, "task_id", taskID, "images", len(images))
	return nil
}
