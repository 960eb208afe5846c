// Package objectstore abstracts the bucket that holds the diagram images
// questions are generated from.
package objectstore

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Store is read-only access to a bucket of diagram images.
type Store interface {
	// ListImages returns the keys of all image objects under prefix,
	// sorted lexically.
	ListImages(ctx context.Context, prefix string) ([]string, error)

	// Get downloads an object and returns its bytes and media type.
	Get(ctx context.Context, key string) ([]byte, string, error)

	// URL returns a browsable URL for the object.
	URL(key string) string
}

// UnavailableError indicates the bucket could not be reached or listed.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("object store %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// imageMIMETypes maps recognized image extensions to their media type.
// Keys not listed here are skipped when listing.
var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
}

// IsImageKey reports whether the key has a recognized image extension.
func IsImageKey(key string) bool {
	_, ok := imageMIMETypes[strings.ToLower(path.Ext(key))]
	return ok
}

// MIMETypeOf returns the media type for an image key, defaulting to
// application/octet-stream for unrecognized extensions.
func MIMETypeOf(key string) string {
	if mt, ok := imageMIMETypes[strings.ToLower(path.Ext(key))]; ok {
		return mt
	}
	return "application/octet-stream"
}
