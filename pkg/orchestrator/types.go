//go:generate mockgen -destination=./mocks/orchestrator.go . ReleaseFetcher,AssetUploader,AssetDeleter,FileDiscoverer

package orchestrator

import (
	"context"
	"strings"

	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/model"
)

// ReleaseFetcher is the subset of the release API client used to snapshot a
// release's current assets.
type ReleaseFetcher interface {
	GetRelease(ctx context.Context, owner, repo, releaseID string) (*model.Release, error)
}

// AssetUploader publishes one asset under the given templated upload URL.
type AssetUploader interface {
	UploadAsset(ctx context.Context, uploadURL string, up model.AssetUpload) (*model.UploadedAsset, error)
}

// AssetDeleter removes a published asset by its API URL.
type AssetDeleter interface {
	DeleteAsset(ctx context.Context, assetURL string) error
}

// FileDiscoverer expands the configured asset-path pattern into an ordered
// list of local files.
type FileDiscoverer interface {
	Discover(pattern string) ([]string, error)
}

// Orchestrator ties file discovery, reconciliation and the release API
// together for one upload run.
type Orchestrator struct {
	Releases ReleaseFetcher
	Uploader AssetUploader
	Deleter  AssetDeleter
	Files    FileDiscoverer
	Hooks    Hooks // Hooks for progress and event notifications
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // discovering|fetching|validating|deleting|uploading|done
	Name  string // asset name, when the event concerns a single asset
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// UploadOptions control one upload run.
type UploadOptions struct {
	UploadURL   string // templated upload URL from the release
	AssetPath   string // glob pattern for local files
	AssetName   string // optional published-name override (single-file batches only)
	AssetLabel  string // optional display label
	ContentType string // optional explicit content type for every file
	Overwrite   bool   // delete colliding published assets instead of failing
	Concurrency int    // max in-flight uploads/deletions; <=0 means unbounded
}

// Result carries the public download URLs of every uploaded asset, in
// file-discovery order.
type Result struct {
	BrowserDownloadURLs []string
}

// Joined renders the URLs as a newline-separated list.
func (r *Result) Joined() string {
	return strings.Join(r.BrowserDownloadURLs, "\n")
}
