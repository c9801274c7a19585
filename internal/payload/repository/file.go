package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const filePerm os.FileMode = 0o644

// FileRepo stores the document as a single file. With atomic writes enabled
// the new content goes to a temp file in the same directory which is then
// renamed over the target, so readers never observe a partial document.
type FileRepo struct {
	fs     afero.Fs
	path   string
	atomic bool
}

// NewFileRepo returns a repository writing path on the given filesystem.
// A nil fs means the real OS filesystem.
func NewFileRepo(fsys afero.Fs, path string, atomic bool) *FileRepo {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileRepo{fs: fsys, path: path, atomic: atomic}
}

// Path returns the location of the stored file.
func (r *FileRepo) Path() string { return r.path }

func (r *FileRepo) Load(_ context.Context) ([]byte, error) {
	b, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return b, nil
}

func (r *FileRepo) Replace(_ context.Context, data []byte) error {
	if !r.atomic {
		if err := afero.WriteFile(r.fs, r.path, data, filePerm); err != nil {
			return fmt.Errorf("write %s: %w", r.path, err)
		}
		return nil
	}
	return r.replaceAtomic(data)
}

func (r *FileRepo) replaceAtomic(data []byte) (err error) {
	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(r.fs, dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", r.path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = r.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = r.fs.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = r.fs.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpName, r.path, err)
	}
	return nil
}

// Ping checks that the directory holding the file exists.
func (r *FileRepo) Ping(_ context.Context) error {
	dir := filepath.Dir(r.path)
	ok, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !ok {
		return fmt.Errorf("directory %s does not exist", dir)
	}
	return nil
}
