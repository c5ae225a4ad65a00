package dirsize

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Info is the lstat-level metadata the scanner needs about one path.
type Info struct {
	IsDir     bool
	IsSymlink bool
	IsRegular bool
	Size      uint64
	Device    uint64
}

// Metadata abstracts filesystem metadata access so the scanner can be
// tested against an in-memory tree.
type Metadata interface {
	// Lstat returns metadata for path without following symlinks.
	Lstat(path string) (Info, error)
	// List returns the entry names of the directory at path.
	List(path string) ([]string, error)
}

// Scanner accumulates the total size of regular files under a root.
type Scanner struct {
	fs     Metadata
	logger *logrus.Entry
}

// NewScanner creates a scanner backed by the real filesystem.
func NewScanner(logger *logrus.Entry) *Scanner {
	return &Scanner{fs: systemMetadata(), logger: logger}
}

// NewScannerWithMetadata creates a scanner over the given metadata source.
func NewScannerWithMetadata(fs Metadata, logger *logrus.Entry) *Scanner {
	return &Scanner{fs: fs, logger: logger}
}

// Scan walks the tree rooted at root and returns the total byte size of the
// regular files in it. Symlinks are never followed and never counted. With
// xdev set, the device id of root is captured first and every visited
// directory and file is compared against it; entries on a different device
// contribute nothing, though directories on a foreign device are still
// descended (each directory is judged against the root's device, not its
// parent's). Any metadata failure aborts the scan: a partial total must not
// be reported as a healthy measurement.
func (s *Scanner) Scan(root string, xdev bool) (uint64, error) {
	var rootDev uint64
	if xdev {
		info, err := s.fs.Lstat(root)
		if err != nil {
			return 0, err
		}
		rootDev = info.Device
	}

	return s.walk(root, xdev, rootDev)
}

func (s *Scanner) walk(dir string, xdev bool, rootDev uint64) (uint64, error) {
	countFiles := true
	if xdev {
		info, err := s.fs.Lstat(dir)
		if err != nil {
			return 0, err
		}
		if info.Device != rootDev {
			countFiles = false
		}
	}

	names, err := s.fs.List(dir)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := s.fs.Lstat(path)
		if err != nil {
			return 0, err
		}

		if info.IsSymlink {
			continue
		}

		if info.IsDir {
			sub, err := s.walk(path, xdev, rootDev)
			if err != nil {
				return 0, err
			}
			total += sub
			continue
		}

		if !countFiles || !info.IsRegular {
			continue
		}
		if xdev && info.Device != rootDev {
			continue
		}
		total += info.Size
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"dir":   dir,
			"bytes": total,
		}).Debug("Accumulated directory size")
	}

	return total, nil
}
