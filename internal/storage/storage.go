// Package storage persists binary objects (product images) and hands back a
// public URL plus the object key. Deletion is always by stored key, never by
// parsing a URL.
package storage

import (
	"context"
	"io"
)

type Object struct {
	URL string
	Key string
}

type Store interface {
	// Put uploads the object under a fresh key derived from filename and
	// returns its public URL and key.
	Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (Object, error)
	// Remove deletes the object stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error
}
