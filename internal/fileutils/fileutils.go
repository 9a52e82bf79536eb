// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over the destination. A crash mid-write never leaves the
// destination truncated or half-rewritten.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		if closeErr := tmp.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close temp file")
		}
		removeTemp(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		removeTemp(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		removeTemp(tmpName)
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		removeTemp(tmpName)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil {
		log.WithError(err).WithField("file", name).Warn("Failed to remove temp file")
	}
}
