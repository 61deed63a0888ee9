package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func requireMessages(t *testing.T, err error, want ...string) {
	t.Helper()
	verr, ok := domain.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.ElementsMatch(t, want, verr.Messages)
}

func TestNewRegistration(t *testing.T) {
	t.Run("trims username", func(t *testing.T) {
		reg, err := domain.NewRegistration(str("Jane Doe"), str("  jane "), str("pw"))
		require.NoError(t, err)
		require.Equal(t, "jane", reg.Username)
		require.Equal(t, "Jane Doe", reg.FullName)
	})

	tests := []struct {
		name                         string
		fullName, username, password *string
		want                         []string
	}{
		{"all missing", nil, nil, nil, []string{
			"Full name field is required", "Username field is required", "Password field is required",
		}},
		{"blank values", str(""), str("   "), str(""), []string{
			"Full name cannot be blank", "Username cannot be blank", "Password cannot be blank",
		}},
		{"too long", str(strings.Repeat("a", 256)), str("jane"), str("pw"), []string{
			"Full name cannot be greater than 255 characters",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewRegistration(tt.fullName, tt.username, tt.password)
			requireMessages(t, err, tt.want...)
		})
	}
}

func TestNewCredentials(t *testing.T) {
	c, err := domain.NewCredentials(str("jane"), str("pw"))
	require.NoError(t, err)
	require.Equal(t, domain.Credentials{Username: "jane", Password: "pw"}, c)

	_, err = domain.NewCredentials(nil, str(""))
	requireMessages(t, err, "Username field is required", "Password cannot be blank")
}

func TestUserLocked(t *testing.T) {
	require.False(t, domain.User{LoginAttempts: 2}.Locked())
	require.True(t, domain.User{LoginAttempts: 3}.Locked())
	require.True(t, domain.SessionAccount{LoginAttempts: 3}.Locked())
}

func TestNewTask(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		task, err := domain.NewTask("U1", domain.TaskFields{
			Title:     str("Write report"),
			Deadline:  str("01/02/2025 09:30"),
			Completed: str("N"),
		})
		require.NoError(t, err)
		require.Equal(t, "U1", task.UserID)
		require.Equal(t, domain.CompletedNo, task.Completed)
		require.Nil(t, task.Description)
		require.Equal(t, time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC), *task.Deadline)
	})

	tests := []struct {
		name   string
		fields domain.TaskFields
		want   []string
	}{
		{"missing required", domain.TaskFields{Description: str("x")}, []string{
			"Title field is required", "Completed field is required",
		}},
		{"blank title", domain.TaskFields{Title: str(""), Completed: str("Y")}, []string{"Task title error"}},
		{"bad completed", domain.TaskFields{Title: str("t"), Completed: str("yes")}, []string{
			"Task completed must be a Y or an N",
		}},
		{"bad deadline", domain.TaskFields{Title: str("t"), Completed: str("Y"), Deadline: str("2025-02-01")}, []string{
			"Task deadline datetime error",
		}},
		{"non canonical deadline", domain.TaskFields{Title: str("t"), Completed: str("Y"), Deadline: str("1/2/2025 9:30")}, []string{
			"Task deadline datetime error",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTask("U1", tt.fields)
			requireMessages(t, err, tt.want...)
		})
	}
}

func TestNewTaskPatch(t *testing.T) {
	_, err := domain.NewTaskPatch(domain.TaskFields{})
	requireMessages(t, err, "No task fields provided")

	patch, err := domain.NewTaskPatch(domain.TaskFields{Completed: str("Y")})
	require.NoError(t, err)
	require.Nil(t, patch.Title)

	updated := patch.Apply(domain.Task{Title: "keep", Completed: domain.CompletedNo})
	require.Equal(t, "keep", updated.Title)
	require.Equal(t, domain.CompletedYes, updated.Completed)
}

func TestParseDeadline_RoundTrip(t *testing.T) {
	d, err := domain.ParseDeadline("31/12/2024 23:59")
	require.NoError(t, err)
	require.Equal(t, "31/12/2024 23:59", *domain.FormatDeadline(&d))
	require.Nil(t, domain.FormatDeadline(nil))

	_, err = domain.ParseDeadline("32/12/2024 23:59")
	require.Error(t, err)
}

func TestImageExtension(t *testing.T) {
	tests := map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpeg",
		"image/jpg":  ".jpg",
		"image/gif":  ".gif",
	}
	for mime, ext := range tests {
		got, ok := domain.ImageExtension(mime)
		require.True(t, ok, mime)
		require.Equal(t, ext, got)
	}

	_, ok := domain.ImageExtension("image/webp")
	require.False(t, ok)
}

func TestUploadAttributes(t *testing.T) {
	title, stem, err := domain.UploadAttributes(domain.ImageAttributes{Title: str("Diagram"), Filename: str("diagram")})
	require.NoError(t, err)
	require.Equal(t, "Diagram", title)
	require.Equal(t, "diagram", stem)

	_, _, err = domain.UploadAttributes(domain.ImageAttributes{Title: str("Diagram")})
	requireMessages(t, err, "Title and filename fields are mandatory")

	_, _, err = domain.UploadAttributes(domain.ImageAttributes{Title: str(""), Filename: str("diagram")})
	requireMessages(t, err, "Title and filename fields are mandatory")

	_, _, err = domain.UploadAttributes(domain.ImageAttributes{Title: str("Diagram"), Filename: str("diagram.png")})
	requireMessages(t, err, "Filename must not contain file extension")
}

func TestNewImage(t *testing.T) {
	img, err := domain.NewImage("T1", "Diagram", "my diagram_1.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "T1", img.TaskID)

	_, err = domain.NewImage("T1", "Diagram", "bad/name.png", "image/png")
	requireMessages(t, err, "Image filename error - must be between 1 and 30 characters and only be .jpg .gif .png")

	_, err = domain.NewImage("T1", "", strings.Repeat("a", 27)+".png", "image/png")
	requireMessages(t, err,
		"Image title error",
		"Image filename error - must be between 1 and 30 characters and only be .jpg .gif .png",
	)
}

func TestNewImagePatch(t *testing.T) {
	current := domain.Image{ID: "I1", TaskID: "T1", Title: "Diagram", Filename: "diagram.png", MimeType: "image/png"}

	_, err := domain.NewImagePatch(current, domain.ImageAttributes{})
	requireMessages(t, err, "No image fields provided")

	_, err = domain.NewImagePatch(current, domain.ImageAttributes{Filename: str("sketch.jpg")})
	requireMessages(t, err, "Filename must not contain file extension")

	patch, err := domain.NewImagePatch(current, domain.ImageAttributes{Filename: str("sketch")})
	require.NoError(t, err)
	require.Equal(t, "sketch.png", *patch.Filename)
	require.Nil(t, patch.Title)

	updated := patch.Apply(current)
	require.Equal(t, "sketch.png", updated.Filename)
	require.Equal(t, "Diagram", updated.Title)
	require.Equal(t, "/v1/tasks/T1/images/I1", updated.URL())
}
