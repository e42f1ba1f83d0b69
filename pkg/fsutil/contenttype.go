package fsutil

import (
	"mime"
	"path/filepath"
)

// fallbackContentType is the generic binary type used when the extension is
// unknown to the platform's MIME database.
const fallbackContentType = "application/octet-stream"

// ResolveContentType picks the content type for an upload: the explicit
// override when set, else a type inferred from the file extension, else the
// generic binary fallback.
func ResolveContentType(path, override string) string {
	if override != "" {
		return override
	}
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return fallbackContentType
}
