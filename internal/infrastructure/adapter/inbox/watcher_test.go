package inbox

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "date,amount,direction,description\n2024-03-01,450.00,debit,SWIGGY ORDER 123\n"

type inboxDeps struct {
	dir       string
	ingestion *usecasemocks.MockIngestionUseCase
	rules     *usecasemocks.MockRuleUseCase
	watcher   *Watcher
}

func setup(t *testing.T) *inboxDeps {
	d := &inboxDeps{
		dir:       t.TempDir(),
		ingestion: usecasemocks.NewMockIngestionUseCase(t),
		rules:     usecasemocks.NewMockRuleUseCase(t),
	}

	w, err := NewWatcher(
		Config{Dir: d.dir, EntityID: "acme", Debounce: 40 * time.Millisecond},
		d.ingestion,
		d.rules,
		timeadapter.NewRealTimeProvider(),
		logger.NewNoopLogger(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	d.watcher = w
	return d
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewWatcher_CreatesDirectories(t *testing.T) {
	d := setup(t)

	for _, sub := range []string{processedDir, failedDir} {
		info, err := os.Stat(filepath.Join(d.dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestNewWatcher_RejectsInvalidEntity(t *testing.T) {
	_, err := NewWatcher(
		Config{Dir: t.TempDir(), EntityID: " "},
		usecasemocks.NewMockIngestionUseCase(t),
		usecasemocks.NewMockRuleUseCase(t),
		timeadapter.NewRealTimeProvider(),
		logger.NewNoopLogger(),
	)
	assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
}

func TestProcessFile(t *testing.T) {
	tests := []struct {
		name      string
		rulesErr  error
		ingestErr error
		wantDir   string
	}{
		{name: "ingested file moves to processed", wantDir: processedDir},
		{name: "rejected document moves to failed", ingestErr: errs.ErrInvalidDocument, wantDir: failedDir},
		{name: "rule seeding failure moves to failed", rulesErr: errs.ErrDatabaseConnection, wantDir: failedDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setup(t)
			path := filepath.Join(d.dir, "march.csv")
			writeFile(t, path, sampleCSV)

			d.rules.EXPECT().EnsureDefaultRules(mock.Anything, "acme").Return(tt.rulesErr)
			if tt.rulesErr == nil {
				d.ingestion.EXPECT().IngestCSV(mock.Anything, usecase.CSVBatchRequest{
					EntityID: "acme",
					FileName: "march.csv",
					Content:  []byte(sampleCSV),
				}).Return(&usecase.BatchResult{UploadedFileID: "upload-1", RawCount: 1}, tt.ingestErr).Once()
			}

			d.watcher.processFile(context.Background(), path)

			_, err := os.Stat(path)
			assert.True(t, errors.Is(err, os.ErrNotExist))
			_, err = os.Stat(filepath.Join(d.dir, tt.wantDir, "march.csv"))
			assert.NoError(t, err)
		})
	}
}

func TestProcessFile_NameClashKeepsBothFiles(t *testing.T) {
	d := setup(t)
	writeFile(t, filepath.Join(d.dir, processedDir, "march.csv"), "older")
	path := filepath.Join(d.dir, "march.csv")
	writeFile(t, path, sampleCSV)

	d.rules.EXPECT().EnsureDefaultRules(mock.Anything, "acme").Return(nil)
	d.ingestion.EXPECT().IngestCSV(mock.Anything, mock.Anything).
		Return(&usecase.BatchResult{UploadedFileID: "upload-1", WasExisting: true}, nil)

	d.watcher.processFile(context.Background(), path)

	entries, err := os.ReadDir(filepath.Join(d.dir, processedDir))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWatcher_IngestsDroppedAndExistingFiles(t *testing.T) {
	d := setup(t)
	writeFile(t, filepath.Join(d.dir, "waiting.csv"), sampleCSV)

	d.rules.EXPECT().EnsureDefaultRules(mock.Anything, "acme").Return(nil)
	d.ingestion.EXPECT().IngestCSV(mock.Anything, mock.MatchedBy(func(req usecase.CSVBatchRequest) bool {
		return req.EntityID == "acme"
	})).Return(&usecase.BatchResult{UploadedFileID: "upload-1"}, nil).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, d.watcher.Start(ctx))

	writeFile(t, filepath.Join(d.dir, "dropped.csv"), sampleCSV)
	writeFile(t, filepath.Join(d.dir, "notes.txt"), "ignored")

	require.Eventually(t, func() bool {
		entries, err := os.ReadDir(filepath.Join(d.dir, processedDir))
		return err == nil && len(entries) == 2
	}, 5*time.Second, 20*time.Millisecond)

	_, err := os.Stat(filepath.Join(d.dir, "notes.txt"))
	assert.NoError(t, err)
	require.NoError(t, d.watcher.Close())
}

func TestIsCSV(t *testing.T) {
	assert.True(t, isCSV("/in/march.csv"))
	assert.True(t, isCSV("MARCH.CSV"))
	assert.False(t, isCSV(".partial.csv"))
	assert.False(t, isCSV("march.csv.tmp"))
	assert.False(t, isCSV("notes.txt"))
}
