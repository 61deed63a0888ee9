package service

import (
	"io"
	"time"
)

// FileStore holds the image files addressed by task id and filename.
// filestore.Disk implements it.
type FileStore interface {
	Save(taskID, filename string, r io.Reader) error
	Rename(taskID, oldName, newName string) error
	Trash(taskID, filename string) (tombstone string, err error)
	Restore(taskID, tombstone, filename string) error
	Delete(taskID, filename string) error
	Exists(taskID, filename string) (bool, error)
	Open(taskID, filename string) (io.ReadCloser, error)
	RemoveDir(taskID string) error
	List() (map[string][]string, error)
	PurgeScratch(cutoff time.Time) (int, error)
}
