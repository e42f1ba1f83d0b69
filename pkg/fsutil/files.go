// Package fsutil provides the filesystem-facing helpers of the uploader:
// glob-based file discovery, file sizing and content-type resolution.
package fsutil

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	pkgerrors "github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
)

// GlobDiscoverer expands doublestar glob patterns into ordered file lists.
// The zero value is ready to use.
type GlobDiscoverer struct{}

// Discover returns every regular file matching the pattern, in the order the
// glob produces them. Matching zero files is an error: an upload run with
// nothing to upload is a misconfiguration, not a no-op.
func (GlobDiscoverer) Discover(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid asset path pattern %q", pattern)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to stat %s", m)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", pkgerrors.ErrNoFilesMatched, pattern)
	}
	return files, nil
}

// FileSize returns the byte length of a regular file.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to stat %s", path)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory, not a file", path)
	}
	return info.Size(), nil
}
