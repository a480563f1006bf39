// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio provides atomic file writing and one-time backups.
package atomicio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a file name to get the name of its backup.
const BackupSuffix = ".bak"

// WriteFile writes data to a file atomically. If the file exists, its
// permissions are preserved, otherwise perm is used.
func WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	if fi, err := os.Stat(name); err == nil {
		perm = fi.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	// Create a temporary file in the same directory to ensure that it's on the
	// same filesystem, which is a requirement for an atomic os.Rename.
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		// Clean up the temporary file if something goes wrong.
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Chmod(perm); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}

// Backup writes data to the backup file of name, unless the backup already
// exists. It reports whether the backup was written.
//
// An existing backup is never overwritten, so it keeps the contents the file
// had before it was first changed.
func Backup(name string, data []byte) (bool, error) {
	f, err := os.OpenFile(name+BackupSuffix, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
