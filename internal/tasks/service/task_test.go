package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/stretchr/testify/require"
)

func TestTaskCRUD(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	other := e.register(t, "john", "secret")

	created, err := e.tasks.Create(ctx, u.ID, domain.TaskFields{
		Title:       str("Write report"),
		Description: str("Quarterly"),
		Deadline:    str("01/02/2026 09:30"),
		Completed:   str("N"),
	})
	require.NoError(t, err)
	require.Equal(t, "Write report", created.Title)
	require.Equal(t, "01/02/2026 09:30", *domain.FormatDeadline(created.Deadline))
	require.Empty(t, created.Images)

	t.Run("create requires title and completed", func(t *testing.T) {
		_, err := e.tasks.Create(ctx, u.ID, domain.TaskFields{Description: str("x")})
		requireMessages(t, err, "Title field is required", "Completed field is required")
	})

	t.Run("get is scoped by user", func(t *testing.T) {
		got, err := e.tasks.Get(ctx, u.ID, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.Task, got.Task)

		_, err = e.tasks.Get(ctx, other.ID, created.ID)
		require.ErrorIs(t, err, service.ErrTaskNotFound)
	})

	t.Run("update applies present fields", func(t *testing.T) {
		got, err := e.tasks.Update(ctx, u.ID, created.ID, domain.TaskFields{Completed: str("Y")})
		require.NoError(t, err)
		require.Equal(t, domain.CompletedYes, got.Completed)
		require.Equal(t, "Write report", got.Title)
		require.Equal(t, "Quarterly", *got.Description)
	})

	t.Run("update rejects empty and invalid", func(t *testing.T) {
		_, err := e.tasks.Update(ctx, u.ID, created.ID, domain.TaskFields{})
		requireMessages(t, err, "No task fields provided")

		_, err = e.tasks.Update(ctx, u.ID, created.ID, domain.TaskFields{Deadline: str("2026-02-01")})
		requireMessages(t, err, "Task deadline datetime error")

		_, err = e.tasks.Update(ctx, other.ID, created.ID, domain.TaskFields{Title: str("Mine now")})
		require.ErrorIs(t, err, service.ErrTaskNotFound)
	})
}

func TestListTasks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	other := e.register(t, "john", "secret")

	for i := range 3 {
		task := e.createTask(t, u.ID, fmt.Sprintf("Task %d", i))
		if i == 0 {
			_, err := e.tasks.Update(ctx, u.ID, task.ID, domain.TaskFields{Completed: str("Y")})
			require.NoError(t, err)
		}
	}
	e.createTask(t, other.ID, "Not mine")

	all, err := e.tasks.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Task 0", all[0].Title)

	done, err := e.tasks.ListByCompletion(ctx, u.ID, "Y")
	require.NoError(t, err)
	require.Len(t, done, 1)

	open, err := e.tasks.ListByCompletion(ctx, u.ID, "N")
	require.NoError(t, err)
	require.Len(t, open, 2)

	for _, bad := range []string{"", "y", "yes", "X"} {
		_, err := e.tasks.ListByCompletion(ctx, u.ID, bad)
		require.ErrorIs(t, err, service.ErrInvalidCompleted, bad)
	}
}

func TestListPage(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")

	t.Run("empty listing has one page", func(t *testing.T) {
		page, err := e.tasks.ListPage(ctx, u.ID, 1)
		require.NoError(t, err)
		require.Empty(t, page.Tasks)
		require.Equal(t, 1, page.Page.TotalPages)
		require.False(t, page.Page.HasNext)
		require.False(t, page.Page.HasPrev)
	})

	for i := range 12 {
		e.createTask(t, u.ID, fmt.Sprintf("Task %02d", i))
	}

	tests := []struct {
		page     int
		rows     int
		first    string
		hasNext  bool
		hasPrev  bool
		notFound bool
	}{
		{page: 1, rows: 5, first: "Task 00", hasNext: true},
		{page: 2, rows: 5, first: "Task 05", hasNext: true, hasPrev: true},
		{page: 3, rows: 2, first: "Task 10", hasPrev: true},
		{page: 4, notFound: true},
		{page: 0, notFound: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			page, err := e.tasks.ListPage(ctx, u.ID, tt.page)
			if tt.notFound {
				require.ErrorIs(t, err, service.ErrPageNotFound)
				return
			}
			require.NoError(t, err)
			require.Len(t, page.Tasks, tt.rows)
			require.Equal(t, tt.first, page.Tasks[0].Title)
			require.Equal(t, 12, page.TotalRows)
			require.Equal(t, 3, page.Page.TotalPages)
			require.Equal(t, tt.hasNext, page.Page.HasNext)
			require.Equal(t, tt.hasPrev, page.Page.HasPrev)
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		rows, page int
		size       int
		wantOffset int
		wantPages  int
		wantErr    bool
	}{
		{"no rows", 0, 1, 5, 0, 1, false},
		{"exact multiple", 10, 2, 5, 5, 2, false},
		{"partial last page", 11, 3, 5, 10, 3, false},
		{"past the end", 11, 4, 5, 0, 0, true},
		{"zero page", 11, 0, 5, 0, 0, true},
		{"default size", 6, 2, 0, 5, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := service.Paginate(tt.rows, tt.page, tt.size)
			if tt.wantErr {
				require.ErrorIs(t, err, service.ErrPageNotFound)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOffset, p.Offset)
			require.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestDeleteTask_Cascade(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	other := e.register(t, "john", "secret")
	task := e.createTask(t, u.ID, "Task")
	e.upload(t, u.ID, task.ID, "a", pngBytes)
	e.upload(t, u.ID, task.ID, "b", gifBytes)
	// A missing file does not stop the cascade.
	require.NoError(t, e.files.Delete(task.ID, "b.gif"))

	require.ErrorIs(t, e.tasks.Delete(ctx, other.ID, task.ID), service.ErrTaskNotFound)
	require.NoError(t, e.tasks.Delete(ctx, u.ID, task.ID))

	_, err := e.tasks.Get(ctx, u.ID, task.ID)
	require.ErrorIs(t, err, service.ErrTaskNotFound)

	all, err := e.files.List()
	require.NoError(t, err)
	require.NotContains(t, all, task.ID)

	rows, err := e.store.Images().ListFilenames(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}

// trashFailFiles refuses to move anything to a tombstone.
type trashFailFiles struct {
	service.FileStore
}

func (trashFailFiles) Trash(string, string) (string, error) {
	return "", errors.New("read-only file system")
}

func TestDeleteTask_StopsOnImageFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")
	e.upload(t, u.ID, task.ID, "a", pngBytes)

	files := trashFailFiles{e.files}
	images := &service.ImageService{Store: e.store, Files: files}
	tasks := &service.TaskService{Store: e.store, Images: images, Files: files}

	require.ErrorIs(t, tasks.Delete(ctx, u.ID, task.ID), service.ErrFileStore)

	got, err := e.tasks.Get(ctx, u.ID, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 1)
	require.Equal(t, []string{"a.png"}, e.fileNames(t, task.ID))
}

func TestHousekeeping(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")
	e.upload(t, u.ID, task.ID, "kept", pngBytes)
	e.upload(t, u.ID, task.ID, "lost", pngBytes)

	require.NoError(t, e.files.Delete(task.ID, "lost.png"))
	require.NoError(t, e.files.Save(task.ID, "stray.png", strings.NewReader("stray")))

	_, err := e.sessions.Create(ctx, u.ID)
	require.NoError(t, err)
	e.now = e.now.Add(-2 * service.DefaultRefreshTTL)
	_, err = e.sessions.Create(ctx, u.ID)
	require.NoError(t, err)
	e.now = e.now.Add(2 * service.DefaultRefreshTTL)

	hk := service.NewHousekeepingService(e.store, e.files, discardLogger(), time.Hour)
	hk.Now = func() time.Time { return e.now }

	report := hk.RunOnce(ctx)
	require.EqualValues(t, 1, report.ExpiredSessions)
	require.Equal(t, map[string][]string{task.ID: {"stray.png"}}, report.OrphanFiles)
	require.Equal(t, map[string][]string{task.ID: {"lost.png"}}, report.MissingFiles)

	// Reporting never touches stored files.
	require.ElementsMatch(t, []string{"kept.png", "stray.png"}, e.fileNames(t, task.ID))
}

func TestHousekeeping_StartStop(t *testing.T) {
	e := newEnv(t)
	hk := service.NewHousekeepingService(e.store, e.files, discardLogger(), time.Hour)
	hk.Start()
	hk.Stop()
}
