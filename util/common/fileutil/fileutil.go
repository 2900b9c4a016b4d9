package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harness/pubcheck/util/common/errors"
)

// validatePath checks if a path is usable as a report destination.
// Returns an error if the path is empty or contains invalid characters.
func validatePath(path string) error {
	if path == "" {
		return errors.NewValidationError("path", "path cannot be empty")
	}

	if strings.ContainsAny(filepath.Base(path), "<>:|?*\\") {
		return errors.NewValidationError("path", "path contains invalid characters")
	}

	return nil
}

// validateWritePermissions checks if a directory is writable.
func validateWritePermissions(dir string) error {
	f, err := os.CreateTemp(dir, ".write_test-*")
	if err != nil {
		return errors.NewFileError(dir, "write_permission", err)
	}
	f.Close()
	os.Remove(f.Name())
	return nil
}

// WriteFile writes data to a file, creating it if necessary.
// It validates the path, creates parent directories if needed,
// and verifies write permissions before writing.
func WriteFile(path string, data []byte) error {
	if err := validatePath(path); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewFileError(path, "create_dir", err)
	}

	if err := validateWritePermissions(dir); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError(path, "write", err)
	}
	return nil
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir checks if the path is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile checks if the path is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
