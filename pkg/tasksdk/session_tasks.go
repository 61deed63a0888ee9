package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListTasks returns every task of the user.
func (s *Session) ListTasks(ctx context.Context) (*TaskListResponse, error) {
	return s.listTasks(ctx, "/v1/tasks")
}

// ListTasksByCompletion returns the tasks whose completed flag is "Y" or "N".
func (s *Session) ListTasksByCompletion(ctx context.Context, completed string) (*TaskListResponse, error) {
	return s.listTasks(ctx, "/v1/tasks?completed="+url.QueryEscape(completed))
}

func (s *Session) listTasks(ctx context.Context, path string) (*TaskListResponse, error) {
	list, err := doJSON[TaskListResponse](ctx, s.client, http.MethodGet, path, s.AccessToken(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// ListTasksPage returns one page of tasks. Pages start at 1.
func (s *Session) ListTasksPage(ctx context.Context, page int) (*TaskPageResponse, error) {
	p, err := doJSON[TaskPageResponse](ctx, s.client, http.MethodGet,
		"/v1/tasks?page="+strconv.Itoa(page), s.AccessToken(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateTask creates a task. Title and Completed are required.
func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (*TaskResponse, error) {
	task, err := doJSON[TaskResponse](ctx, s.client, http.MethodPost, "/v1/tasks", s.AccessToken(), req, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches a single task.
func (s *Session) GetTask(ctx context.Context, taskID string) (*TaskResponse, error) {
	task, err := doJSON[TaskResponse](ctx, s.client, http.MethodGet, "/v1/tasks/"+taskID, s.AccessToken(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask changes the fields set in req.
func (s *Session) UpdateTask(ctx context.Context, taskID string, req TaskRequest) (*TaskResponse, error) {
	task, err := doJSON[TaskResponse](ctx, s.client, http.MethodPatch, "/v1/tasks/"+taskID, s.AccessToken(), req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task together with its images.
func (s *Session) DeleteTask(ctx context.Context, taskID string) error {
	_, err := doJSON[struct{}](ctx, s.client, http.MethodDelete, "/v1/tasks/"+taskID, s.AccessToken(), nil, http.StatusOK)
	return err
}
