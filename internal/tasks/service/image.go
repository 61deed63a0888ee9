package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/filestore"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/gabriel-vasile/mimetype"
)

// ImageService keeps image rows and image files in step. Every mutation
// changes the row first, then the file, then commits; a failed file step
// rolls the row back and a failed commit undoes the file step.
type ImageService struct {
	Store store.Store
	Files FileStore

	// MaxBytes defaults to domain.MaxImageBytes.
	MaxBytes int64
}

func (s *ImageService) maxBytes() int64 {
	if s.MaxBytes <= 0 {
		return domain.MaxImageBytes
	}
	return s.MaxBytes
}

// Get returns the attributes of an image whose task belongs to userID.
func (s *ImageService) Get(ctx context.Context, userID, taskID, imageID string) (domain.Image, error) {
	img, err := s.Store.Images().GetImage(ctx, userID, taskID, imageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Image{}, ErrImageNotFound
		}
		return domain.Image{}, fmt.Errorf("get image: %w", err)
	}
	return img, nil
}

// Open returns the attributes and the content of an image. The caller
// closes the reader.
func (s *ImageService) Open(ctx context.Context, userID, taskID, imageID string) (domain.Image, io.ReadCloser, error) {
	img, err := s.Get(ctx, userID, taskID, imageID)
	if err != nil {
		return domain.Image{}, nil, err
	}

	rc, err := s.Files.Open(taskID, img.Filename)
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			slogx.FromContext(ctx).Error("image row without file", "task_id", taskID, "image_id", imageID)
			return domain.Image{}, nil, ErrImageFileMissing
		}
		return domain.Image{}, nil, fmt.Errorf("%w: open: %v", ErrFileStore, err)
	}
	return img, rc, nil
}

// readUpload reads at most maxBytes+1 bytes so an oversized upload is
// detected without buffering all of it.
func (s *ImageService) readUpload(content io.Reader) ([]byte, bool, error) {
	data, err := io.ReadAll(io.LimitReader(content, s.maxBytes()+1))
	if err != nil {
		return nil, false, fmt.Errorf("read upload: %w", err)
	}
	return data, int64(len(data)) > s.maxBytes(), nil
}

// Upload stores a new image for a task owned by userID. The stored filename
// is the requested stem plus the extension of the detected content type.
func (s *ImageService) Upload(
	ctx context.Context,
	userID, taskID string,
	attrs domain.ImageAttributes,
	content io.Reader,
) (domain.Image, error) {
	l := slogx.FromContext(ctx)

	data, tooLarge, err := s.readUpload(content)
	if err != nil {
		return domain.Image{}, err
	}

	tx, err := s.Store.Tx(ctx)
	if err != nil {
		return domain.Image{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Tasks().GetTask(ctx, userID, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Image{}, ErrTaskNotFound
		}
		return domain.Image{}, fmt.Errorf("get task: %w", err)
	}

	title, stem, err := domain.UploadAttributes(attrs)
	if err != nil {
		return domain.Image{}, err
	}

	if tooLarge {
		return domain.Image{}, ErrFileTooLarge
	}

	mimeType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	ext, ok := domain.ImageExtension(mimeType)
	if !ok {
		return domain.Image{}, ErrUnsupportedFileType
	}

	img, err := domain.NewImage(taskID, title, stem+ext, mimeType)
	if err != nil {
		return domain.Image{}, err
	}
	img.ID = idx.New().String()

	taken, err := tx.Images().FilenameExists(ctx, taskID, img.Filename)
	if err != nil {
		return domain.Image{}, fmt.Errorf("check filename: %w", err)
	}
	if taken {
		return domain.Image{}, ErrFilenameTaken
	}

	if err := tx.Images().CreateImage(ctx, img); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Image{}, ErrFilenameTaken
		}
		return domain.Image{}, fmt.Errorf("create image: %w", err)
	}

	stored, err := tx.Images().GetImage(ctx, userID, taskID, img.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Image{}, ErrReadAfterWrite
		}
		return domain.Image{}, fmt.Errorf("reread image: %w", err)
	}

	if err := s.Files.Save(taskID, stored.Filename, bytes.NewReader(data)); err != nil {
		if errors.Is(err, filestore.ErrExists) {
			// A file without a row; leave it for housekeeping to report.
			l.Warn("upload target already on disk", "task_id", taskID, "filename", stored.Filename)
			return domain.Image{}, ErrFilenameTaken
		}
		return domain.Image{}, fmt.Errorf("%w: save: %v", ErrFileStore, err)
	}

	if err := tx.Commit(); err != nil {
		if derr := s.Files.Delete(taskID, stored.Filename); derr != nil {
			l.Error("failed to remove file after commit failure",
				"task_id", taskID, "filename", stored.Filename, "error", derr)
			return domain.Image{}, ErrInconsistentState
		}
		return domain.Image{}, fmt.Errorf("commit upload: %w", err)
	}

	return stored, nil
}

// UpdateAttributes changes the title and/or filename of an image. A new
// filename keeps the current extension and the file is renamed before the
// commit. If the commit then fails the rename is reversed; if that fails too
// the result is ErrInconsistentState.
func (s *ImageService) UpdateAttributes(
	ctx context.Context,
	userID, taskID, imageID string,
	attrs domain.ImageAttributes,
) (domain.Image, error) {
	l := slogx.FromContext(ctx)

	tx, err := s.Store.Tx(ctx)
	if err != nil {
		return domain.Image{}, err
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Images().GetImage(ctx, userID, taskID, imageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Image{}, ErrImageNotFound
		}
		return domain.Image{}, fmt.Errorf("get image: %w", err)
	}

	patch, err := domain.NewImagePatch(current, attrs)
	if err != nil {
		return domain.Image{}, err
	}

	renamed := patch.Filename != nil && *patch.Filename != current.Filename
	if renamed {
		taken, err := tx.Images().FilenameExists(ctx, taskID, *patch.Filename)
		if err != nil {
			return domain.Image{}, fmt.Errorf("check filename: %w", err)
		}
		if taken {
			return domain.Image{}, ErrFilenameTaken
		}
	}

	if err := tx.Images().UpdateImage(ctx, taskID, imageID, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Image{}, ErrFilenameTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.Image{}, ErrImageNotFound
		}
		return domain.Image{}, fmt.Errorf("update image: %w", err)
	}

	updated, err := tx.Images().GetImage(ctx, userID, taskID, imageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Image{}, ErrReadAfterWrite
		}
		return domain.Image{}, fmt.Errorf("reread image: %w", err)
	}

	if renamed {
		if err := s.Files.Rename(taskID, current.Filename, updated.Filename); err != nil {
			switch {
			case errors.Is(err, filestore.ErrNotFound):
				return domain.Image{}, ErrImageFileMissing
			case errors.Is(err, filestore.ErrExists):
				return domain.Image{}, ErrFilenameTaken
			}
			return domain.Image{}, fmt.Errorf("%w: rename: %v", ErrFileStore, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if renamed {
			if rerr := s.Files.Rename(taskID, updated.Filename, current.Filename); rerr != nil {
				l.Error("failed to undo rename after commit failure",
					"task_id", taskID, "image_id", imageID,
					"from", updated.Filename, "to", current.Filename, "error", rerr)
				return domain.Image{}, ErrInconsistentState
			}
		}
		return domain.Image{}, fmt.Errorf("commit image update: %w", err)
	}

	return updated, nil
}

// Delete removes an image row and its file. The file is moved to a
// tombstone before the commit and purged after it, so a failed commit can
// put it back. A file that is already gone is not an error.
func (s *ImageService) Delete(ctx context.Context, userID, taskID, imageID string) error {
	l := slogx.FromContext(ctx)

	tx, err := s.Store.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	img, err := tx.Images().GetImage(ctx, userID, taskID, imageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("get image: %w", err)
	}

	if err := tx.Images().DeleteImage(ctx, taskID, imageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("delete image: %w", err)
	}

	tombstone, err := s.Files.Trash(taskID, img.Filename)
	if err != nil && !errors.Is(err, filestore.ErrNotFound) {
		return fmt.Errorf("%w: delete: %v", ErrFileStore, err)
	}
	if errors.Is(err, filestore.ErrNotFound) {
		l.Warn("image file already gone", "task_id", taskID, "filename", img.Filename)
	}

	if err := tx.Commit(); err != nil {
		if tombstone != "" {
			if rerr := s.Files.Restore(taskID, tombstone, img.Filename); rerr != nil {
				l.Error("failed to restore image file after commit failure",
					"task_id", taskID, "image_id", imageID, "tombstone", tombstone, "error", rerr)
				return ErrInconsistentState
			}
		}
		return fmt.Errorf("commit image delete: %w", err)
	}

	if tombstone != "" {
		if err := s.Files.Delete(taskID, tombstone); err != nil {
			// Housekeeping purges tombstones left behind.
			l.Warn("failed to purge tombstone", "task_id", taskID, "tombstone", tombstone, "error", err)
		}
	}
	return nil
}
