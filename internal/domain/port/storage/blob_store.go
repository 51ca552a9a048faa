package storage

import "context"

// BlobStore keeps the raw bytes of uploaded documents
type BlobStore interface {
	// Put writes content under key and returns a locator that identifies it
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the backend rejects the write
	Put(ctx context.Context, key string, content []byte, contentType string) (string, error)
}
