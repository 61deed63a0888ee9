// Package filestore keeps image files on local disk under
// <root>/<task id>/<filename>.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("filestore: not found")
	ErrExists   = errors.New("filestore: already exists")
	ErrBadName  = errors.New("filestore: invalid name")
)

// Scratch names start with a dot so they can never collide with a stored
// image filename.
const (
	UploadPrefix    = ".upload-"
	TombstonePrefix = ".trash-"
)

// IsScratch reports whether name is a partial upload or a tombstone.
func IsScratch(name string) bool {
	return strings.HasPrefix(name, UploadPrefix) || strings.HasPrefix(name, TombstonePrefix)
}

// Disk stores files below Root. None of its operations overwrite an
// existing file.
type Disk struct {
	Root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Disk{Root: root}, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

func (d *Disk) dir(taskID string) (string, error) {
	if err := checkName(taskID); err != nil {
		return "", err
	}
	return filepath.Join(d.Root, taskID), nil
}

func (d *Disk) path(taskID, filename string) (string, error) {
	dir, err := d.dir(taskID)
	if err != nil {
		return "", err
	}
	if err := checkName(filename); err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// Save writes r to taskID/filename. The content is written to a scratch file
// first and linked into place, so a reader never sees a partial file and an
// existing file is reported as ErrExists instead of being replaced.
func (d *Disk) Save(taskID, filename string, r io.Reader) error {
	final, err := d.path(taskID, filename)
	if err != nil {
		return err
	}

	dir := filepath.Dir(final)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create task folder: %w", err)
	}

	tmp := filepath.Join(dir, UploadPrefix+uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer os.Remove(tmp)

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close upload file: %w", err)
	}

	return link(tmp, final)
}

// link moves src to dst without replacing dst.
func link(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return ErrExists
		case errors.Is(err, fs.ErrNotExist):
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Rename moves taskID/oldName to taskID/newName. ErrNotFound if the source
// is missing, ErrExists if the target is taken.
func (d *Disk) Rename(taskID, oldName, newName string) error {
	src, err := d.path(taskID, oldName)
	if err != nil {
		return err
	}
	dst, err := d.path(taskID, newName)
	if err != nil {
		return err
	}

	if err := link(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		// Keep the file reachable under its old name only.
		_ = os.Remove(dst)
		return fmt.Errorf("remove old file: %w", err)
	}
	return nil
}

// Trash moves a file to a fresh tombstone name in the same folder and
// returns that name. Restore undoes it and Delete purges it.
func (d *Disk) Trash(taskID, filename string) (string, error) {
	tombstone := TombstonePrefix + uuid.NewString() + "-" + filename
	if err := d.Rename(taskID, filename, tombstone); err != nil {
		return "", err
	}
	// The scratch age counts from the move, not from the upload.
	now := time.Now()
	_ = os.Chtimes(filepath.Join(d.Root, taskID, tombstone), now, now)
	return tombstone, nil
}

// Restore moves a tombstone back to filename.
func (d *Disk) Restore(taskID, tombstone, filename string) error {
	return d.Rename(taskID, tombstone, filename)
}

// Delete removes taskID/filename. ErrNotFound if it does not exist.
func (d *Disk) Delete(taskID, filename string) error {
	p, err := d.path(taskID, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (d *Disk) Exists(taskID, filename string) (bool, error) {
	p, err := d.path(taskID, filename)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, err
}

// Open returns the content of taskID/filename.
func (d *Disk) Open(taskID, filename string) (io.ReadCloser, error) {
	p, err := d.path(taskID, filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// RemoveDir deletes the folder of a task with everything left in it. A
// missing folder is not an error.
func (d *Disk) RemoveDir(taskID string) error {
	dir, err := d.dir(taskID)
	if err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

// List returns every file below Root grouped by task folder, scratch files
// included.
func (d *Disk) List() (map[string][]string, error) {
	dirs, err := os.ReadDir(d.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string][]string{}, nil
		}
		return nil, err
	}

	out := make(map[string][]string, len(dirs))
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(d.Root, dir.Name()))
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Type().IsRegular() {
				names = append(names, e.Name())
			}
		}
		out[dir.Name()] = names
	}
	return out, nil
}

// PurgeScratch removes partial uploads and tombstones last modified before
// cutoff and returns how many were removed. Younger scratch files may still
// belong to a request in flight.
func (d *Disk) PurgeScratch(cutoff time.Time) (int, error) {
	all, err := d.List()
	if err != nil {
		return 0, err
	}

	var purged int
	for taskID, names := range all {
		for _, name := range names {
			if !IsScratch(name) {
				continue
			}
			p := filepath.Join(d.Root, taskID, name)
			info, err := os.Stat(p)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return purged, err
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return purged, err
			}
			purged++
		}
	}
	return purged, nil
}

// Ping reports whether Root is still a usable directory.
func (d *Disk) Ping() error {
	info, err := os.Stat(d.Root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("upload root %s is not a directory", d.Root)
	}
	return nil
}
