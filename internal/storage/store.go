package storage

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// Kind selects the remote resource type. KindAuto is resolved from the file's
// detected content type at upload time.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAuto  Kind = "auto"
)

// Asset describes an uploaded object. Duration is only set for videos.
type Asset struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration,omitempty"`
}

// Store uploads and deletes media assets on the remote host.
//
// Upload consumes the local temporary file: it is removed on success and on
// failure. Delete is advisory; it reports false instead of returning an error
// so a failed remote cleanup never masks the caller's own result.
type Store interface {
	Upload(ctx context.Context, localPath string, kind Kind) (Asset, error)
	Delete(ctx context.Context, rawURL string, kind Kind) bool
}

// ObjectKeyFromURL derives the remote object key from an asset URL: the
// trailing path segment with everything from the first dot stripped. Returns
// "" when no key can be derived.
func ObjectKeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	seg := path.Base(u.Path)
	if seg == "." || seg == "/" {
		return ""
	}
	if i := strings.Index(seg, "."); i >= 0 {
		seg = seg[:i]
	}
	return seg
}
