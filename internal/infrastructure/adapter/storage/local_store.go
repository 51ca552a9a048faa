package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
)

// LocalStore writes objects below a directory on the local filesystem
type LocalStore struct {
	root   string
	logger coreport.Logger
}

// NewLocalStore creates the root directory if needed
func NewLocalStore(root string, logger coreport.Logger) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create storage path: %w", err)
	}
	return &LocalStore{root: abs, logger: logger}, nil
}

// Put writes content atomically and returns a file:// locator
func (s *LocalStore) Put(ctx context.Context, key string, content []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.root, filepath.FromSlash(key))
	if !strings.HasPrefix(target, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: key escapes storage root: %q", errs.ErrStorageUnavailable, key)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", s.fail(target, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", s.fail(target, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", s.fail(target, err)
	}
	if err := tmp.Close(); err != nil {
		return "", s.fail(target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", s.fail(target, err)
	}

	s.logger.Debug("Stored upload content", map[string]any{
		"path":  target,
		"bytes": len(content),
	})

	return "file://" + filepath.ToSlash(target), nil
}

func (s *LocalStore) fail(target string, err error) error {
	s.logger.Error("Failed to store upload content", map[string]any{
		"path":  target,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}
