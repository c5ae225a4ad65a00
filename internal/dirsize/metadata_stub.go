//go:build !linux

package dirsize

import "fmt"

// stubMetadata rejects all access on platforms without device-id support.
type stubMetadata struct{}

func systemMetadata() Metadata {
	return stubMetadata{}
}

func (stubMetadata) Lstat(path string) (Info, error) {
	return Info{}, fmt.Errorf("directory scanning is not supported on this platform")
}

func (stubMetadata) List(path string) ([]string, error) {
	return nil, fmt.Errorf("directory scanning is not supported on this platform")
}
