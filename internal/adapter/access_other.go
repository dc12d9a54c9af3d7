//go:build !unix

package adapter

import "os"

func writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().Perm()&0o200 != 0
}

func isReadOnlyFS(_ error) bool {
	return false
}
