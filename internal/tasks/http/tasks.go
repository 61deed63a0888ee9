package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

const msgBadTaskID = "Task ID cannot be blank and must be a valid ID"

type TasksHandler struct {
	TaskService *service.TaskService
}

func taskFields(req tasksdk.TaskRequest) domain.TaskFields {
	return domain.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Completed:   req.Completed,
	}
}

// HandleList godoc
//
//	@Summary		List tasks
//	@Description	List the caller's tasks. With completed=Y|N only tasks with that flag are returned.
//	@Description	With page=N one page of five tasks is returned together with paging details.
//	@Tags			Tasks
//	@Produce		json
//	@Param			completed	query		string											false	"Y or N"
//	@Param			page		query		int												false	"Page number, starting at 1"
//	@Success		200			{object}	tasksdk.Response[tasksdk.TaskListResponse]	"rows_returned, tasks"
//	@Failure		400			{object}	tasksdk.ErrorResponse
//	@Failure		401			{object}	tasksdk.ErrorResponse
//	@Failure		404			{object}	tasksdk.ErrorResponse	"Page not found"
//	@Failure		500			{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if q.Has("completed") {
		tasks, err := h.TaskService.ListByCompletion(ctx, userID(r), q.Get("completed"))
		if err != nil {
			writeError(w, r, err, "Failed to get tasks")
			return
		}
		httpx.WriteEnvelope(w, http.StatusOK, tasksdk.TaskListResponse{
			RowsReturned: len(tasks),
			Tasks:        toTaskResponses(tasks),
		})
		return
	}

	if q.Has("page") {
		number, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			httpx.WriteEnvelope(w, http.StatusBadRequest, nil, "Page number cannot be blank and must be numeric")
			return
		}

		page, err := h.TaskService.ListPage(ctx, userID(r), number)
		if err != nil {
			writeError(w, r, err, "Failed to get tasks")
			return
		}
		httpx.WriteEnvelope(w, http.StatusOK, tasksdk.TaskPageResponse{
			RowsReturned:    len(page.Tasks),
			TotalRows:       page.TotalRows,
			TotalPages:      page.Page.TotalPages,
			HasNextPage:     page.Page.HasNext,
			HasPreviousPage: page.Page.HasPrev,
			Tasks:           toTaskResponses(page.Tasks),
		})
		return
	}

	tasks, err := h.TaskService.List(ctx, userID(r))
	if err != nil {
		writeError(w, r, err, "Failed to get tasks")
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, tasksdk.TaskListResponse{
		RowsReturned: len(tasks),
		Tasks:        toTaskResponses(tasks),
	})
}

// HandleCreate godoc
//
//	@Summary		Create task
//	@Description	Create a task. Title and completed are required; deadline uses dd/mm/YYYY HH:MM.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.TaskRequest								true	"title, description, deadline, completed"
//	@Success		201		{object}	tasksdk.Response[tasksdk.TaskResponse]	"Task created"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.TaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.TaskService.Create(r.Context(), userID(r), taskFields(req))
	if err != nil {
		if errors.Is(err, service.ErrReadAfterWrite) {
			writeError(w, r, err, "Failed to retrieve task after creation")
			return
		}
		writeError(w, r, err, "Failed to insert task into database - check submitted data for errors")
		return
	}

	httpx.WriteEnvelope(w, http.StatusCreated, toTaskResponse(task), "Task created")
}

// HandleGet godoc
//
//	@Summary		Get task
//	@Tags			Tasks
//	@Produce		json
//	@Param			task_id	path		string									true	"Task ID"
//	@Success		200		{object}	tasksdk.Response[tasksdk.TaskResponse]
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Failure		404		{object}	tasksdk.ErrorResponse	"Task not found"
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "task_id", msgBadTaskID)
	if !ok {
		return
	}

	task, err := h.TaskService.Get(r.Context(), userID(r), taskID)
	if err != nil {
		writeError(w, r, err, "Failed to get task")
		return
	}

	httpx.Cache(w)
	httpx.WriteEnvelope(w, http.StatusOK, toTaskResponse(task))
}

// HandleUpdate godoc
//
//	@Summary		Update task
//	@Description	Change the fields present in the body. At least one field is required.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			task_id	path		string									true	"Task ID"
//	@Param			request	body		tasksdk.TaskRequest						true	"fields to change"
//	@Success		200		{object}	tasksdk.Response[tasksdk.TaskResponse]	"Task updated"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Failure		404		{object}	tasksdk.ErrorResponse	"Task not found"
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "task_id", msgBadTaskID)
	if !ok {
		return
	}

	var req tasksdk.TaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.TaskService.Update(r.Context(), userID(r), taskID, taskFields(req))
	if err != nil {
		if errors.Is(err, service.ErrReadAfterWrite) {
			writeError(w, r, err, "Failed to retrieve task after update")
			return
		}
		writeError(w, r, err, "Failed to update task - check your data for errors")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, toTaskResponse(task), "Task updated")
}

// HandleDelete godoc
//
//	@Summary		Delete task
//	@Description	Delete a task together with every image attached to it.
//	@Tags			Tasks
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	tasksdk.ErrorResponse	"Task deleted"
//	@Failure		400		{object}	tasksdk.ErrorResponse
//	@Failure		401		{object}	tasksdk.ErrorResponse
//	@Failure		404		{object}	tasksdk.ErrorResponse	"Task not found"
//	@Failure		500		{object}	tasksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tasks/{task_id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "task_id", msgBadTaskID)
	if !ok {
		return
	}

	if err := h.TaskService.Delete(r.Context(), userID(r), taskID); err != nil {
		writeError(w, r, err, "Failed to delete task")
		return
	}

	httpx.WriteEnvelope(w, http.StatusOK, nil, "Task deleted")
}
