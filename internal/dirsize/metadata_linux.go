//go:build linux

package dirsize

import (
	"os"

	"golang.org/x/sys/unix"
)

// osMetadata reads metadata from the real filesystem.
type osMetadata struct{}

func systemMetadata() Metadata {
	return osMetadata{}
}

func (osMetadata) Lstat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Info{}, &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	mode := st.Mode & unix.S_IFMT
	return Info{
		IsDir:     mode == unix.S_IFDIR,
		IsSymlink: mode == unix.S_IFLNK,
		IsRegular: mode == unix.S_IFREG,
		Size:      uint64(st.Size),
		Device:    uint64(st.Dev),
	}, nil
}

func (osMetadata) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
