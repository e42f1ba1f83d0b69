// Package reconcile decides what a batch of candidate files means for a
// release: which canonical names collide with each other, which collide with
// already-published assets, and which published assets have to be deleted
// before uploading under the overwrite policy. It performs no network or
// filesystem I/O; it operates purely on the supplied snapshots.
package reconcile

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pierrotdelalune/actions-upload-release-asset/pkg/errors"
	"github.com/pierrotdelalune/actions-upload-release-asset/pkg/model"
)

// ConflictKind distinguishes the two collision classes.
type ConflictKind string

// Conflict kinds.
const (
	// KindDuplicateLocal means two or more input files canonicalize to the same name.
	KindDuplicateLocal ConflictKind = "duplicate-local"
	// KindAlreadyExists means a file's canonical name matches a published asset.
	KindAlreadyExists ConflictKind = "already-exists"
)

// Conflict describes one naming collision found during reconciliation.
type Conflict struct {
	Kind  ConflictKind
	Name  string
	Paths []string
}

// Message renders the conflict as a human-readable diagnostic.
func (c Conflict) Message() string {
	switch c.Kind {
	case KindDuplicateLocal:
		return fmt.Sprintf("multiple files map to the asset name %q: %s", c.Name, strings.Join(c.Paths, ", "))
	case KindAlreadyExists:
		return fmt.Sprintf("an asset named %q already exists in the release", c.Name)
	default:
		return fmt.Sprintf("naming conflict for asset %q", c.Name)
	}
}

// ValidationError aggregates every conflict found in one reconciliation pass.
// Reporting is cumulative, not fail-fast: a single run surfaces the complete
// set of problems.
type ValidationError struct {
	Conflicts []Conflict
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		msgs[i] = c.Message()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap ties the aggregate into the package sentinel so callers can branch
// with errors.Is.
func (e *ValidationError) Unwrap() error { return pkgerrors.ErrValidation }

// entry aggregates the zero-or-one remote asset and the local files that
// share one canonical name.
type entry struct {
	asset *model.RemoteAsset
	files []model.LocalFile
}

// Reconcile validates the batch against the release's current assets and
// returns the set of remote assets to delete before uploading. A non-nil
// error is either the shared-name precondition failure or a *ValidationError
// carrying every collision.
func Reconcile(files []model.LocalFile, assets []model.RemoteAsset, overwrite bool) ([]model.RemoteAsset, error) {
	if len(files) > 1 {
		for _, f := range files {
			if f.OverrideName != "" {
				return nil, pkgerrors.ErrSharedName
			}
		}
	}

	entries := make(map[string]*entry, len(assets)+len(files))
	order := make([]string, 0, len(assets)+len(files))

	for i := range assets {
		if _, ok := entries[assets[i].Name]; ok {
			continue
		}
		entries[assets[i].Name] = &entry{asset: &assets[i]}
		order = append(order, assets[i].Name)
	}

	for _, f := range files {
		name := f.CandidateName()
		e, ok := entries[name]
		if !ok {
			e = &entry{}
			entries[name] = e
			order = append(order, name)
		}
		e.files = append(e.files, f)
	}

	var conflicts []Conflict
	var deletions []model.RemoteAsset
	for _, name := range order {
		e := entries[name]
		switch {
		case len(e.files) >= 2:
			paths := make([]string, len(e.files))
			for i, f := range e.files {
				paths[i] = f.Path
			}
			conflicts = append(conflicts, Conflict{Kind: KindDuplicateLocal, Name: name, Paths: paths})
		case len(e.files) == 1 && e.asset != nil:
			if overwrite {
				deletions = append(deletions, *e.asset)
			} else {
				conflicts = append(conflicts, Conflict{Kind: KindAlreadyExists, Name: name, Paths: []string{e.files[0].Path}})
			}
		}
	}

	if len(conflicts) > 0 {
		return nil, &ValidationError{Conflicts: conflicts}
	}
	return deletions, nil
}
