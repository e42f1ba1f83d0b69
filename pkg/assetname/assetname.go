// Package assetname derives the canonical filename a release asset will be
// stored under. GitHub rewrites uploaded asset filenames server-side; this
// package mirrors that rewriting so name collisions can be detected locally
// before any network call.
package assetname

import (
	"regexp"
	"strings"
)

var (
	separators  = regexp.MustCompile(`[,/]`)
	invalid     = regexp.MustCompile(`[^a-zA-Z0-9\-+@_.]`)
	periodRuns  = regexp.MustCompile(`\.+`)
	stemWithDot = regexp.MustCompile(`^[^.]+\.$`)
)

// Canonicalize maps an arbitrary filename to the name the release service
// will store it under. It is total and idempotent.
func Canonicalize(name string) string {
	s := separators.ReplaceAllString(name, ".")
	s = invalid.ReplaceAllString(s, "")
	s = periodRuns.ReplaceAllString(s, ".")

	switch {
	case strings.HasPrefix(s, ".") && len(s) > 1:
		// Hidden-file style names get a visible stem: ".foo" -> "default.foo".
		s = strings.TrimSuffix(s, ".")
		s = "default" + s
	case stemWithDot.MatchString(s):
		// A bare stem with a trailing period: "foo." -> "default.foo".
		s = "default." + strings.TrimSuffix(s, ".")
	default:
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
