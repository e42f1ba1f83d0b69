// Package orchestrator sequences one upload run: discover files, snapshot
// the release, reconcile names, delete colliding assets, then upload
// concurrently and join the download URLs in discovery order.
package orchestrator

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/fsutil"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/github"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/model"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/reconcile"
)

// New creates an orchestrator with the given collaborators.
func New(releases ReleaseFetcher, uploader AssetUploader, deleter AssetDeleter, files FileDiscoverer, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		Releases: releases,
		Uploader: uploader,
		Deleter:  deleter,
		Files:    files,
		Hooks:    hooks,
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Run performs one complete upload run. Validation failures abort before any
// network mutation; any single deletion or upload failure fails the whole
// run with no partial-success output.
func (o *Orchestrator) Run(ctx context.Context, opts UploadOptions) (*Result, error) {
	if o.Releases == nil || o.Uploader == nil || o.Deleter == nil || o.Files == nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrNotConfigured, "orchestrator")
	}

	emit(o.Hooks, Event{Phase: "discovering", Msg: opts.AssetPath})
	paths, err := o.Files.Discover(opts.AssetPath)
	if err != nil {
		return nil, err
	}

	ref, err := github.ParseUploadURL(opts.UploadURL)
	if err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "fetching", Msg: ref.Owner + "/" + ref.Repo + "#" + ref.ReleaseID})
	release, err := o.Releases.GetRelease(ctx, ref.Owner, ref.Repo, ref.ReleaseID)
	if err != nil {
		return nil, err
	}

	files := make([]model.LocalFile, len(paths))
	for i, p := range paths {
		files[i] = model.LocalFile{Path: p, OverrideName: opts.AssetName}
	}

	emit(o.Hooks, Event{Phase: "validating"})
	deletions, err := reconcile.Reconcile(files, release.Assets, opts.Overwrite)
	if err != nil {
		return nil, err
	}

	// Deletions must fully complete before any upload starts, so a delete
	// never races an upload targeting the same name.
	if err := o.deleteAll(ctx, deletions, opts.Concurrency); err != nil {
		return nil, err
	}

	urls, err := o.uploadAll(ctx, files, opts)
	if err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "done"})
	return &Result{BrowserDownloadURLs: urls}, nil
}

func (o *Orchestrator) deleteAll(ctx context.Context, deletions []model.RemoteAsset, concurrency int) error {
	if len(deletions) == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for _, asset := range deletions {
		asset := asset
		g.Go(func() error {
			emit(o.Hooks, Event{Phase: "deleting", Name: asset.Name, Msg: asset.URL})
			if err := o.Deleter.DeleteAsset(ctx, asset.URL); err != nil {
				return pkgerrors.Wrapf(err, "failed to delete asset %s", asset.Name)
			}
			return nil
		})
	}
	return g.Wait()
}

func (o *Orchestrator) uploadAll(ctx context.Context, files []model.LocalFile, opts UploadOptions) ([]string, error) {
	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			name := file.CandidateName()
			emit(o.Hooks, Event{Phase: "uploading", Name: name, Msg: file.Path})

			size, err := fsutil.FileSize(file.Path)
			if err != nil {
				return err
			}
			body, err := os.Open(file.Path)
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to open %s", file.Path)
			}
			defer func() { _ = body.Close() }()

			uploaded, err := o.Uploader.UploadAsset(ctx, opts.UploadURL, model.AssetUpload{
				Name:          name,
				Label:         opts.AssetLabel,
				ContentType:   fsutil.ResolveContentType(file.Path, opts.ContentType),
				ContentLength: size,
				Body:          body,
			})
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to upload %s", file.Path)
			}
			// Results land at the discovery index regardless of completion order.
			urls[i] = uploaded.BrowserDownloadURL
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
