package github

import (
	"regexp"

	pkgerrors "github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
)

// ReleaseRef identifies a release by its owner, repository and numeric id.
type ReleaseRef struct {
	Owner     string
	Repo      string
	ReleaseID string
}

var uploadURLPattern = regexp.MustCompile(`repos/(?P<owner>[^/]+)/(?P<repo>[^/]+)/releases/(?P<releaseID>\d+)/`)

// ParseUploadURL extracts the owner, repository and release id from a
// templated upload URL of the shape
// ".../repos/{owner}/{repo}/releases/{id}/assets{?name,label}".
// A URL that does not contain those path segments is a fatal parse error.
func ParseUploadURL(uploadURL string) (ReleaseRef, error) {
	m := uploadURLPattern.FindStringSubmatch(uploadURL)
	if m == nil {
		return ReleaseRef{}, pkgerrors.Wrapf(pkgerrors.ErrUploadURLParse, "parsing %q", uploadURL)
	}
	return ReleaseRef{
		Owner:     m[uploadURLPattern.SubexpIndex("owner")],
		Repo:      m[uploadURLPattern.SubexpIndex("repo")],
		ReleaseID: m[uploadURLPattern.SubexpIndex("releaseID")],
	}, nil
}
