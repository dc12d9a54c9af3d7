package domain

import (
	"errors"
	"os"

	"github.com/mouse-blink/linesplit/internal/adapter"
	m "github.com/mouse-blink/linesplit/internal/model"
)

var errReadOnlyFS = errors.New("read-only file system")

// restrictedFS is backed by the real disk but can pretend paths are
// unwritable or live on a read-only file system.
type restrictedFS struct {
	*adapter.LocalFileSystemAdapter
	unwritable map[m.Path]bool
	readOnlyFS map[m.Path]bool
	writeErr   map[m.Path]error
}

func newRestrictedFS() *restrictedFS {
	return &restrictedFS{
		LocalFileSystemAdapter: adapter.NewLocalFileSystemAdapter(),
		unwritable:             map[m.Path]bool{},
		readOnlyFS:             map[m.Path]bool{},
		writeErr:               map[m.Path]error{},
	}
}

func (f *restrictedFS) Writable(path m.Path) bool {
	if f.unwritable[path] {
		return false
	}

	return f.LocalFileSystemAdapter.Writable(path)
}

func (f *restrictedFS) failure(path m.Path) error {
	if f.readOnlyFS[path] {
		return &os.PathError{Op: "write", Path: string(path), Err: errReadOnlyFS}
	}

	return f.writeErr[path]
}

func (f *restrictedFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := f.failure(path); err != nil {
		return err
	}

	return f.LocalFileSystemAdapter.WriteFile(path, content, perm)
}

func (f *restrictedFS) AppendFile(path m.Path, content []byte) error {
	if err := f.failure(path); err != nil {
		return err
	}

	return f.LocalFileSystemAdapter.AppendFile(path, content)
}

func (f *restrictedFS) IsReadOnlyFS(err error) bool {
	return errors.Is(err, errReadOnlyFS)
}
