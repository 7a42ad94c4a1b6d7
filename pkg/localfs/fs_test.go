package localfs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "note.txt", "hello\nworld\n")

	fsys := &FS{}
	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if content != "hello\nworld\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestReadFileNotFound(t *testing.T) {
	fsys := &FS{}
	_, err := fsys.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadFileDirectory(t *testing.T) {
	fsys := &FS{}
	_, err := fsys.ReadFile(t.TempDir())
	if !errors.Is(err, ErrIsDirectory) {
		t.Fatalf("expected ErrIsDirectory, got %v", err)
	}
}

func TestReadFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.txt", "0123456789")

	fsys := &FS{MaxFileSize: 5}
	if _, err := fsys.ReadFile(path); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	fsys.MaxFileSize = 10
	if _, err := fsys.ReadFile(path); err != nil {
		t.Fatalf("file at the limit should read: %v", err)
	}
}

func TestReadFileStripsURIScheme(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "res.txt", "resource body")

	fsys := &FS{}
	content, err := fsys.ReadFile("file://" + path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if content != "resource body" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "a.txt", "a")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	fsys := &FS{}
	listing, err := fsys.ListDir(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(listing.Files, []string{"a.txt", "b.txt"}) {
		t.Fatalf("unexpected files: %v", listing.Files)
	}
	if !reflect.DeepEqual(listing.Directories, []string{"sub"}) {
		t.Fatalf("unexpected directories: %v", listing.Directories)
	}
}

func TestListDirEmptyPathMeansCurrent(t *testing.T) {
	fsys := &FS{Root: t.TempDir()}
	listing, err := fsys.ListDir("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing.Files) != 0 || len(listing.Directories) != 0 {
		t.Fatalf("expected empty listing, got %+v", listing)
	}
}

func TestListDirNotFound(t *testing.T) {
	fsys := &FS{}
	_, err := fsys.ListDir(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListDirNotDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", "x")

	fsys := &FS{}
	if _, err := fsys.ListDir(path); !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestRootConfinement(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "inside.txt", "ok")

	fsys := &FS{Root: root}
	content, err := fsys.ReadFile("inside.txt")
	if err != nil {
		t.Fatalf("read inside root: %v", err)
	}
	if content != "ok" {
		t.Fatalf("unexpected content: %q", content)
	}

	// Absolute paths are reinterpreted relative to the root.
	if _, err := fsys.ReadFile("/inside.txt"); err != nil {
		t.Fatalf("absolute path under root: %v", err)
	}

	for _, escape := range []string{"../outside.txt", "sub/../../outside.txt"} {
		if _, err := fsys.ReadFile(escape); !errors.Is(err, ErrEscapesRoot) {
			t.Fatalf("expected ErrEscapesRoot for %q, got %v", escape, err)
		}
	}
}
