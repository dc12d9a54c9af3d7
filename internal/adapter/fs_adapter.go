// Package adapter contains file-system and plan persistence adapters for the linesplit CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/linesplit/internal/model"
)

// FileSystemAdapter abstracts the file operations the extractor relies on.
// It hides direct `os` access so the domain logic can be tested against
// read-only files and file systems without needing them on the host.
//
//nolint:interfacebloat // A richer interface keeps extraction logic decoupled from os/fs.
type FileSystemAdapter interface {
	// FileInfo returns metadata for a path. A missing path yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether anything is present at path.
	Exists(path m.Path) bool

	// Writable reports whether the current process may write to path.
	Writable(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// LastByte returns the final byte of a file. ok is false for empty files.
	LastByte(path m.Path) (b byte, ok bool, err error)

	// WriteFile replaces the file contents, creating the file if needed.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// AppendFile appends content to an existing file.
	AppendFile(path m.Path, content []byte) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// IsReadOnlyFS reports whether err was caused by a read-only file system.
	IsReadOnlyFS(err error) bool
}

// LocalFileSystemAdapter backs FileSystemAdapter with the local disk.
type LocalFileSystemAdapter struct{}

// NewLocalFileSystemAdapter constructs a LocalFileSystemAdapter instance ready
// to be wired into the domain layer.
func NewLocalFileSystemAdapter() *LocalFileSystemAdapter {
	return &LocalFileSystemAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFileSystemAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path is present on disk.
func (a *LocalFileSystemAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// Writable reports whether the process has write access to path.
func (a *LocalFileSystemAdapter) Writable(path m.Path) bool {
	return writable(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalFileSystemAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path is supplied by the user on purpose
	return os.ReadFile(string(path))
}

// LastByte reads the final byte of the file at path.
func (a *LocalFileSystemAdapter) LastByte(path m.Path) (byte, bool, error) {
	// #nosec G304 - path is supplied by the user on purpose
	f, err := os.Open(string(path))
	if err != nil {
		return 0, false, err
	}

	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return 0, false, err
	}

	if info.Size() == 0 {
		return 0, false, nil
	}

	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return 0, false, err
	}

	return buf[0], true, nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFileSystemAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// AppendFile appends content to the file at path.
func (a *LocalFileSystemAdapter) AppendFile(path m.Path, content []byte) error {
	// #nosec G304 - path is supplied by the user on purpose
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// MkdirAll creates path and all missing parents.
func (a *LocalFileSystemAdapter) MkdirAll(path m.Path) error {
	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}

	return nil
}

// IsReadOnlyFS reports whether err carries EROFS.
func (a *LocalFileSystemAdapter) IsReadOnlyFS(err error) bool {
	return isReadOnlyFS(err)
}

// NearestExistingDir walks up from dir until it finds a path that exists.
// The file system root is returned when nothing below it exists.
func NearestExistingDir(fs FileSystemAdapter, dir m.Path) m.Path {
	current := filepath.Clean(string(dir))

	for !fs.Exists(m.Path(current)) {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		current = parent
	}

	return m.Path(current)
}
