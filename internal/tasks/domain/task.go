package domain

import (
	"time"
)

type Completed string

const (
	CompletedYes Completed = "Y"
	CompletedNo  Completed = "N"
)

// ParseCompleted accepts exactly "Y" or "N".
func ParseCompleted(s string) (Completed, bool) {
	switch Completed(s) {
	case CompletedYes, CompletedNo:
		return Completed(s), true
	}
	return "", false
}

// MaxDescriptionBytes matches a MEDIUMTEXT column.
const MaxDescriptionBytes = 16777215

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Deadline    *time.Time
	Completed   Completed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskFields is task input as received. Nil means absent.
type TaskFields struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,max=16777215"`
	Deadline    *string `json:"deadline" validate:"omitnil,deadline"`
	Completed   *string `json:"completed" validate:"omitnil,oneof=Y N"`
}

func (f TaskFields) empty() bool {
	return f.Title == nil && f.Description == nil && f.Deadline == nil && f.Completed == nil
}

var taskMessages = map[string]string{
	"title":       "Task title error",
	"description": "Task description error",
	"deadline":    "Task deadline datetime error",
	"completed":   "Task completed must be a Y or an N",
}

// TaskPatch lists the fields an update changes. Nil fields are untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Completed   *Completed
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Deadline == nil && p.Completed == nil
}

// NewTask validates f as a new task owned by userID. Title and completed are
// required. The id is assigned by the caller.
func NewTask(userID string, f TaskFields) (Task, error) {
	var missing []string
	if f.Title == nil {
		missing = append(missing, "Title field is required")
	}
	if f.Completed == nil {
		missing = append(missing, "Completed field is required")
	}
	if len(missing) > 0 {
		return Task{}, invalid(missing...)
	}

	patch, err := NewTaskPatch(f)
	if err != nil {
		return Task{}, err
	}

	return Task{
		UserID:      userID,
		Title:       *patch.Title,
		Description: patch.Description,
		Deadline:    patch.Deadline,
		Completed:   *patch.Completed,
	}, nil
}

// NewTaskPatch validates the present fields of f. At least one is required.
func NewTaskPatch(f TaskFields) (TaskPatch, error) {
	if f.empty() {
		return TaskPatch{}, invalid("No task fields provided")
	}
	if err := check(f, taskMessages); err != nil {
		return TaskPatch{}, err
	}

	patch := TaskPatch{Title: f.Title, Description: f.Description}
	if f.Deadline != nil {
		d, _ := ParseDeadline(*f.Deadline)
		patch.Deadline = &d
	}
	if f.Completed != nil {
		c := Completed(*f.Completed)
		patch.Completed = &c
	}
	return patch, nil
}

// Apply returns t with the patch applied.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Deadline != nil {
		t.Deadline = p.Deadline
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// TaskDetail is a task together with the attributes of its images.
type TaskDetail struct {
	Task
	Images []Image
}
