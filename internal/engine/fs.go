package engine

import (
	"errors"
	"os"
)

// FS is the thin filesystem adapter the batch driver works through, so
// generation logic stays testable without touching a real disk.
type FS interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error
}

// OSFS implements FS over the os package.
type OSFS struct{}

func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}
