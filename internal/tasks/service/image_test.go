package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")

	tests := []struct {
		name     string
		content  []byte
		filename string
		mime     string
	}{
		{"png", pngBytes, "diagram", "image/png"},
		{"gif", gifBytes, "animation", "image/gif"},
		{"jpeg", jpegBytes, "photo", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := e.upload(t, u.ID, task.ID, tt.filename, tt.content)
			ext, _ := domain.ImageExtension(tt.mime)

			require.NotEmpty(t, img.ID)
			require.Equal(t, task.ID, img.TaskID)
			require.Equal(t, tt.filename+ext, img.Filename)
			require.Equal(t, tt.mime, img.MimeType)
			require.Equal(t, "/v1/tasks/"+task.ID+"/images/"+img.ID, img.URL())

			got, rc, err := e.images.Open(ctx, u.ID, task.ID, img.ID)
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.Equal(t, tt.content, data)
			require.Equal(t, img, got)
		})
	}

	detail, err := e.tasks.Get(ctx, u.ID, task.ID)
	require.NoError(t, err)
	require.Len(t, detail.Images, 3)
}

func TestUpload_Rejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	other := e.register(t, "john", "secret")
	task := e.createTask(t, u.ID, "Task")
	e.upload(t, u.ID, task.ID, "taken", pngBytes)

	e.images.MaxBytes = int64(len(pngBytes) + 8)
	oversized := append(bytes.Clone(pngBytes), make([]byte, 64)...)

	attrs := func(title, filename string) domain.ImageAttributes {
		return domain.ImageAttributes{Title: str(title), Filename: str(filename)}
	}

	tests := []struct {
		name    string
		userID  string
		taskID  string
		attrs   domain.ImageAttributes
		content []byte
		wantErr error
		wantMsg string
	}{
		{"task of another user", other.ID, task.ID, attrs("", ""), oversized, service.ErrTaskNotFound, ""},
		{"unknown task", u.ID, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", attrs("t", "f"), pngBytes, service.ErrTaskNotFound, ""},
		{"missing attributes before size", u.ID, task.ID, domain.ImageAttributes{Title: str("t")}, oversized, nil, "Title and filename fields are mandatory"},
		{"extension in filename", u.ID, task.ID, attrs("t", "f.png"), pngBytes, nil, "Filename must not contain file extension"},
		{"too large before type", u.ID, task.ID, attrs("t", "f"), append([]byte("plain text"), make([]byte, 64)...), service.ErrFileTooLarge, ""},
		{"unsupported type", u.ID, task.ID, attrs("t", "f"), []byte("just some text"), service.ErrUnsupportedFileType, ""},
		{"bad filename characters", u.ID, task.ID, attrs("t", "f!"), pngBytes, nil, "Image filename error - must be between 1 and 30 characters and only be .jpg .gif .png"},
		{"duplicate filename", u.ID, task.ID, attrs("t", "taken"), pngBytes, service.ErrFilenameTaken, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.images.Upload(ctx, tt.userID, tt.taskID, tt.attrs, bytes.NewReader(tt.content))
			if tt.wantMsg != "" {
				requireMessages(t, err, tt.wantMsg)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	require.ElementsMatch(t, []string{"taken.png"}, e.fileNames(t, task.ID))
}

func TestUpload_FileWithoutRowIsNotOverwritten(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")

	require.NoError(t, e.files.Save(task.ID, "stray.png", strings.NewReader("stray")))

	_, err := e.images.Upload(ctx, u.ID, task.ID,
		domain.ImageAttributes{Title: str("t"), Filename: str("stray")}, bytes.NewReader(pngBytes))
	require.ErrorIs(t, err, service.ErrFilenameTaken)

	images, err := e.store.Images().ListImagesByTask(ctx, u.ID, task.ID)
	require.NoError(t, err)
	require.Empty(t, images)
}

func TestUpload_CommitFailureRemovesFile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")

	svc := &service.ImageService{Store: commitFailStore{e.store}, Files: e.files}
	_, err := svc.Upload(ctx, u.ID, task.ID,
		domain.ImageAttributes{Title: str("t"), Filename: str("diagram")}, bytes.NewReader(pngBytes))
	require.ErrorIs(t, err, errCommit)

	images, err := e.store.Images().ListImagesByTask(ctx, u.ID, task.ID)
	require.NoError(t, err)
	require.Empty(t, images)
	require.Empty(t, e.fileNames(t, task.ID))
}

func TestUpdateAttributes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")
	img := e.upload(t, u.ID, task.ID, "before", pngBytes)
	e.upload(t, u.ID, task.ID, "taken", pngBytes)

	t.Run("no fields", func(t *testing.T) {
		_, err := e.images.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{})
		requireMessages(t, err, "No image fields provided")
	})

	t.Run("title only", func(t *testing.T) {
		got, err := e.images.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{Title: str("New title")})
		require.NoError(t, err)
		require.Equal(t, "New title", got.Title)
		require.Equal(t, "before.png", got.Filename)
	})

	t.Run("rename keeps extension and moves the file", func(t *testing.T) {
		got, err := e.images.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{Filename: str("after")})
		require.NoError(t, err)
		require.Equal(t, "after.png", got.Filename)
		require.ElementsMatch(t, []string{"after.png", "taken.png"}, e.fileNames(t, task.ID))
	})

	t.Run("duplicate filename", func(t *testing.T) {
		_, err := e.images.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{Filename: str("taken")})
		require.ErrorIs(t, err, service.ErrFilenameTaken)
	})

	t.Run("other user", func(t *testing.T) {
		other := e.register(t, "john", "secret")
		_, err := e.images.UpdateAttributes(ctx, other.ID, task.ID, img.ID, domain.ImageAttributes{Title: str("x")})
		require.ErrorIs(t, err, service.ErrImageNotFound)
	})

	t.Run("missing file leaves the row alone", func(t *testing.T) {
		require.NoError(t, e.files.Delete(task.ID, "after.png"))
		t.Cleanup(func() {
			require.NoError(t, e.files.Save(task.ID, "after.png", bytes.NewReader(pngBytes)))
		})

		_, err := e.images.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{Filename: str("lost")})
		require.ErrorIs(t, err, service.ErrImageFileMissing)

		got, err := e.images.Get(ctx, u.ID, task.ID, img.ID)
		require.NoError(t, err)
		require.Equal(t, "after.png", got.Filename)
	})
}

func TestUpdateAttributes_CommitFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")
	img := e.upload(t, u.ID, task.ID, "before", pngBytes)

	t.Run("rename is undone", func(t *testing.T) {
		svc := &service.ImageService{Store: commitFailStore{e.store}, Files: e.files}
		_, err := svc.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{Filename: str("after")})
		require.ErrorIs(t, err, errCommit)

		got, err := e.images.Get(ctx, u.ID, task.ID, img.ID)
		require.NoError(t, err)
		require.Equal(t, "before.png", got.Filename)
		require.Equal(t, []string{"before.png"}, e.fileNames(t, task.ID))
	})

	t.Run("undo failing is reported", func(t *testing.T) {
		files := &flakyFiles{FileStore: e.files, failFrom: 2}
		svc := &service.ImageService{Store: commitFailStore{e.store}, Files: files}
		_, err := svc.UpdateAttributes(ctx, u.ID, task.ID, img.ID, domain.ImageAttributes{Filename: str("after")})
		require.ErrorIs(t, err, service.ErrInconsistentState)
		require.Equal(t, 2, files.renames)
	})
}

func TestDeleteImage(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	other := e.register(t, "john", "secret")
	task := e.createTask(t, u.ID, "Task")

	t.Run("row and file", func(t *testing.T) {
		img := e.upload(t, u.ID, task.ID, "a", pngBytes)

		require.ErrorIs(t, e.images.Delete(ctx, other.ID, task.ID, img.ID), service.ErrImageNotFound)
		require.NoError(t, e.images.Delete(ctx, u.ID, task.ID, img.ID))
		require.ErrorIs(t, e.images.Delete(ctx, u.ID, task.ID, img.ID), service.ErrImageNotFound)

		_, err := e.images.Get(ctx, u.ID, task.ID, img.ID)
		require.ErrorIs(t, err, service.ErrImageNotFound)
		require.Empty(t, e.fileNames(t, task.ID))
	})

	t.Run("file already gone", func(t *testing.T) {
		img := e.upload(t, u.ID, task.ID, "b", pngBytes)
		require.NoError(t, e.files.Delete(task.ID, "b.png"))

		require.NoError(t, e.images.Delete(ctx, u.ID, task.ID, img.ID))
	})

	t.Run("commit failure restores the file", func(t *testing.T) {
		img := e.upload(t, u.ID, task.ID, "c", pngBytes)

		svc := &service.ImageService{Store: commitFailStore{e.store}, Files: e.files}
		require.ErrorIs(t, svc.Delete(ctx, u.ID, task.ID, img.ID), errCommit)

		_, rc, err := e.images.Open(ctx, u.ID, task.ID, img.ID)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		require.Equal(t, []string{"c.png"}, e.fileNames(t, task.ID))
	})
}

func TestOpen_MissingFile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.register(t, "jane", "secret")
	task := e.createTask(t, u.ID, "Task")
	img := e.upload(t, u.ID, task.ID, "a", pngBytes)
	require.NoError(t, e.files.Delete(task.ID, "a.png"))

	_, _, err := e.images.Open(ctx, u.ID, task.ID, img.ID)
	require.True(t, errors.Is(err, service.ErrImageFileMissing))
}
