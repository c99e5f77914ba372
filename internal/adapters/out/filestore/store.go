// Package filestore materializes export files on the local filesystem for
// the lifetime of one report run.
package filestore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Store writes export files under a primary directory, falling back to the
// system temporary directory when the primary location is unwritable. Files
// are expected to be removed by the caller once dispatch is done.
type Store struct {
	primaryDir string
}

// NewStore creates a file store rooted at primaryDir. The directory is
// created on first use if it does not exist.
func NewStore(primaryDir string) *Store {
	return &Store{primaryDir: primaryDir}
}

// Store materializes a file with the given name, streaming its content
// through write. Tries the primary directory first and the system temporary
// directory second; the error of the primary attempt is joined into the
// returned error when both fail.
func (s *Store) Store(name string, write func(io.Writer) error) (string, error) {
	path, primaryErr := s.writeTo(s.primaryDir, name, write)
	if primaryErr == nil {
		return path, nil
	}

	path, tempErr := s.writeTo(os.TempDir(), name, write)
	if tempErr != nil {
		return "", errors.Join(primaryErr, tempErr)
	}
	return path, nil
}

// Remove deletes a previously stored file. A missing file is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) writeTo(dir, name string, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err = write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}
