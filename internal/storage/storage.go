// Package storage is the object store boundary used for generated documents
// and the cached logo image.
package storage

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrAlreadyExists  = errors.New("object already exists")
	ErrObjectNotFound = errors.New("object not found")
)

// ObjectStore stores named byte blobs grouped in buckets
type ObjectStore interface {
	// List returns the names of the objects in bucket starting with prefix.
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	// Upload writes data under name. With overwrite false an existing object
	// makes the call fail with ErrAlreadyExists.
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string, overwrite bool) error
	Download(ctx context.Context, bucket, name string) ([]byte, error)
	PublicURL(bucket, name string) string
}

func publicURL(base, bucket, name string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + name
}
