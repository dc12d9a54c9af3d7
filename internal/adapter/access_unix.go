//go:build unix

package adapter

import (
	"errors"

	"golang.org/x/sys/unix"
)

func writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

func isReadOnlyFS(err error) bool {
	return errors.Is(err, unix.EROFS)
}
