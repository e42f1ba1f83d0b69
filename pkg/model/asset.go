// Package model provides data structures and types for representing local
// files, releases and release assets.
package model

import (
	"io"
	"path/filepath"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/assetname"
)

// LocalFile is a candidate file for upload, identified by its filesystem path.
// OverrideName, when set, replaces the file's base name as the published name.
type LocalFile struct {
	Path         string
	OverrideName string
}

// CandidateName returns the canonical name this file will be published under:
// the canonicalized override name if one is set, else the canonicalized base
// name of the path.
func (f LocalFile) CandidateName() string {
	if f.OverrideName != "" {
		return assetname.Canonicalize(f.OverrideName)
	}
	return assetname.Canonicalize(filepath.Base(f.Path))
}

// RemoteAsset is an asset already attached to the release at run start.
// It is a read-only snapshot; the Name is already canonical on the server side.
type RemoteAsset struct {
	URL  string `json:"url"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Release is the release snapshot returned by the release API.
type Release struct {
	UploadURL string        `json:"upload_url"`
	Assets    []RemoteAsset `json:"assets"`
}

// UploadedAsset is the server's response to a successful asset upload.
type UploadedAsset struct {
	BrowserDownloadURL string `json:"browser_download_url"`
}

// AssetUpload carries one asset upload request to the protocol client.
type AssetUpload struct {
	Name          string
	Label         string
	ContentType   string
	ContentLength int64
	Body          io.Reader
}
