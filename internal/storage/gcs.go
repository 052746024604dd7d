package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

// GCSStore is the Cloud Storage implementation of ObjectStore
type GCSStore struct {
	client  *storage.Client
	baseURL string
}

func NewGCSStore(client *storage.Client, baseURL string) *GCSStore {
	return &GCSStore{client: client, baseURL: baseURL}
}

func (s *GCSStore) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	var names []string
	it := s.client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list gs://%s/%s: %w", bucket, prefix, err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

func (s *GCSStore) Upload(ctx context.Context, bucket, name string, data []byte, contentType string, overwrite bool) error {
	obj := s.client.Bucket(bucket).Object(name)
	if !overwrite {
		obj = obj.If(storage.Conditions{DoesNotExist: true})
	}

	writer := obj.NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		_ = writer.Close()
		return mapWriteError(bucket, name, err)
	}
	if err := writer.Close(); err != nil {
		return mapWriteError(bucket, name, err)
	}
	return nil
}

func (s *GCSStore) Download(ctx context.Context, bucket, name string) ([]byte, error) {
	reader, err := s.client.Bucket(bucket).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("gs://%s/%s: %w", bucket, name, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to open gs://%s/%s: %w", bucket, name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", bucket, name, err)
	}
	return data, nil
}

func (s *GCSStore) PublicURL(bucket, name string) string {
	return publicURL(s.baseURL, bucket, name)
}

func mapWriteError(bucket, name string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed {
		return fmt.Errorf("gs://%s/%s: %w", bucket, name, ErrAlreadyExists)
	}
	return fmt.Errorf("failed to write gs://%s/%s: %w", bucket, name, err)
}
