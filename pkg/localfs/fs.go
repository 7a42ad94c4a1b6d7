// Package localfs reads files and lists directories for the tool layer.
// Failures are returned as descriptive error values so callers can turn
// them into tool output instead of protocol faults.
package localfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound marks a path that does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrNotDirectory marks a listing target that is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrIsDirectory marks a read target that is a directory.
	ErrIsDirectory = errors.New("is a directory")
	// ErrTooLarge marks a file past the configured size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrEscapesRoot marks a path that resolves outside the configured root.
	ErrEscapesRoot = errors.New("path escapes root")
)

// FS provides file reading and directory listing. A zero FS reads
// anywhere on the local filesystem with no size cap. When Root is set,
// all paths are resolved beneath it and escape attempts are rejected.
type FS struct {
	Root        string
	MaxFileSize int64
}

// ReadFile returns the decoded text contents of the file at path.
func (f *FS) ReadFile(path string) (string, error) {
	resolved, err := f.resolve(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if f.MaxFileSize > 0 && info.Size() > f.MaxFileSize {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, info.Size(), f.MaxFileSize)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Listing holds the immediate children of a directory, split into files
// and subdirectories, name-sorted.
type Listing struct {
	Files       []string `json:"files"`
	Directories []string `json:"directories"`
}

// ListDir lists the directory at path. An empty path means the current
// directory (or the root, when one is configured).
func (f *FS) ListDir(path string) (*Listing, error) {
	if strings.TrimSpace(path) == "" {
		path = "."
	}
	resolved, err := f.resolve(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	listing := &Listing{Files: []string{}, Directories: []string{}}
	for _, entry := range entries {
		if entry.IsDir() {
			listing.Directories = append(listing.Directories, entry.Name())
		} else {
			listing.Files = append(listing.Files, entry.Name())
		}
	}
	return listing, nil
}

// resolve normalizes a raw path and, when a root is configured, confines
// it beneath the root.
func (f *FS) resolve(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("path is required")
	}
	trimmed = strings.TrimPrefix(trimmed, "file://")
	if f.Root == "" {
		return trimmed, nil
	}

	rel := strings.TrimPrefix(filepath.ToSlash(trimmed), "/")
	joined := filepath.Join(f.Root, filepath.FromSlash(rel))

	rootAbs, err := filepath.Abs(f.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	joinedAbs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", raw, err)
	}
	if joinedAbs != rootAbs && !strings.HasPrefix(joinedAbs, rootAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrEscapesRoot, raw)
	}
	return joinedAbs, nil
}
