// Package storage keeps raw upload content in a blob store.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
)

const gcsWriteTimeout = 2 * time.Minute

// GCSStore writes objects to a Google Cloud Storage bucket.
// Credentials come from Application Default Credentials.
type GCSStore struct {
	client *storage.Client
	bucket string
	prefix string
	logger coreport.Logger
}

// NewGCSStore creates a store writing under gs://bucket/prefix
func NewGCSStore(ctx context.Context, bucket, prefix string, logger coreport.Logger) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}, nil
}

// Put uploads content and returns its gs:// URI
func (s *GCSStore) Put(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	objectName := path.Join(s.prefix, key)

	ctx, cancel := context.WithTimeout(ctx, gcsWriteTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return "", s.fail(objectName, "write object", err)
	}
	if err := w.Close(); err != nil {
		return "", s.fail(objectName, "finalize upload", err)
	}

	s.logger.Debug("Stored upload content", map[string]any{
		"bucket": s.bucket,
		"object": objectName,
		"bytes":  len(content),
	})

	return fmt.Sprintf("gs://%s/%s", s.bucket, objectName), nil
}

func (s *GCSStore) fail(objectName, step string, err error) error {
	s.logger.Error("Failed to store upload content", map[string]any{
		"bucket": s.bucket,
		"object": objectName,
		"step":   step,
		"error":  err.Error(),
	})
	return fmt.Errorf("%w: %s: %s", errs.ErrStorageUnavailable, step, err.Error())
}

// Close releases the storage client
func (s *GCSStore) Close() error {
	return s.client.Close()
}
