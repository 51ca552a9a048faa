package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Put(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, logger.NewNoopLogger())
	require.NoError(t, err)

	locator, err := store.Put(context.Background(), "acme/abc123/march.csv", []byte("date,amount\n"), "text/csv")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(locator, "file://"))
	assert.True(t, strings.HasSuffix(locator, "acme/abc123/march.csv"))

	data, err := os.ReadFile(filepath.Join(root, "acme", "abc123", "march.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,amount\n", string(data))

	// same key overwrites in place
	_, err = store.Put(context.Background(), "acme/abc123/march.csv", []byte("v2"), "text/csv")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(root, "acme", "abc123", "march.csv"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLocalStore_RejectsEscapingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../outside.csv", []byte("x"), "text/csv")
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), logger.NewNoopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Put(ctx, "acme/x.csv", []byte("x"), "text/csv")
	assert.ErrorIs(t, err, context.Canceled)
}
