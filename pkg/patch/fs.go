// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package patch

import (
	"io"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileSystem abstracts the file operations a patch needs
type FileSystem interface {
	// ReadFile returns the full content of a regular file and its permissions.
	ReadFile(path string) ([]byte, os.FileMode, error)

	// WriteFileAtomic replaces path with content. On failure path is left as it was.
	WriteFileAtomic(path string, content []byte, mode os.FileMode) error

	// Backup copies path to a new file next to it and returns that file's name.
	// It never overwrites an existing file.
	Backup(path string) (string, error)

	// Restore puts the content of backup back at path and removes backup.
	Restore(path, backup string) error

	// DropBackup removes a backup returned by Backup, if it still exists.
	DropBackup(backup string) error
}

// 🔧 OSFileSystem implements FileSystem on the real filesystem
type OSFileSystem struct {
	rename func(oldpath, newpath string) error
}

var _ FileSystem = (*OSFileSystem)(nil)

// 🏭 NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{rename: os.Rename}
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, os.FileMode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, errors.Errorf("stating file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, 0, errors.Errorf("not a regular file (mode %s)", info.Mode())
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, errors.Errorf("reading file: %w", err)
	}

	return content, info.Mode().Perm(), nil
}

func (fs *OSFileSystem) WriteFileAtomic(path string, content []byte, mode os.FileMode) (err error) {
	// the temp file must live in the target's directory so the rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return errors.Errorf("setting temp file mode: %w", err)
	}

	rename := fs.rename
	if rename == nil {
		rename = os.Rename
	}
	if err = rename(tmpPath, path); err != nil {
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (fs *OSFileSystem) Backup(path string) (_ string, err error) {
	content, mode, err := fs.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading %s for backup: %w", path, err)
	}

	// CreateTemp opens with O_EXCL, so an existing file is never reused
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.bak")
	if err != nil {
		return "", errors.Errorf("creating backup: %w", err)
	}
	backup := f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(backup)
		}
	}()

	if _, err = f.Write(content); err != nil {
		return "", errors.Errorf("writing backup: %w", err)
	}
	if err = f.Sync(); err != nil {
		return "", errors.Errorf("syncing backup: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", errors.Errorf("closing backup: %w", err)
	}
	if err = os.Chmod(backup, mode); err != nil {
		return "", errors.Errorf("setting backup mode: %w", err)
	}

	return backup, nil
}

func (fs *OSFileSystem) Restore(path, backup string) error {
	content, mode, err := fs.ReadFile(backup)
	if err != nil {
		return errors.Errorf("reading backup: %w", err)
	}

	if err := fs.WriteFileAtomic(path, content, mode); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	return fs.DropBackup(backup)
}

func (fs *OSFileSystem) DropBackup(backup string) error {
	if err := os.Remove(backup); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Errorf("removing backup: %w", err)
	}
	return nil
}
