// Package inbox ingests CSV exports dropped into a watched directory.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/fsnotify/fsnotify"
)

const (
	processedDir = "processed"
	failedDir    = "failed"

	defaultDebounce = 500 * time.Millisecond
)

// Config controls which directory is watched and whose ledger it feeds
type Config struct {
	Dir      string
	EntityID string
	// Debounce is how long a file must stay unmodified before it is ingested
	Debounce time.Duration
}

// Watcher feeds *.csv files from Config.Dir into the ingestion pipeline.
// Each file becomes one upload; afterwards it is moved to processed/ or failed/.
type Watcher struct {
	cfg          Config
	ingestion    usecase.IngestionUseCase
	rules        usecase.RuleUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	fsw       *fsnotify.Watcher
	files     chan string
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher prepares the inbox directories and registers the fsnotify watch
func NewWatcher(
	cfg Config,
	ingestion usecase.IngestionUseCase,
	rules usecase.RuleUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (*Watcher, error) {
	if err := entity.ValidateEntityID(cfg.EntityID); err != nil {
		return nil, fmt.Errorf("inbox entity: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}

	for _, dir := range []string{cfg.Dir, filepath.Join(cfg.Dir, processedDir), filepath.Join(cfg.Dir, failedDir)} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create inbox directory %s: %w", dir, err)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", cfg.Dir, err)
	}

	return &Watcher{
		cfg:          cfg,
		ingestion:    ingestion,
		rules:        rules,
		timeProvider: timeProvider,
		logger:       logger,
		fsw:          fsw,
		files:        make(chan string, 64),
		done:         make(chan struct{}),
	}, nil
}

// Start picks up files already waiting in the inbox and then follows new ones.
// It returns immediately; processing stops when ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	existing, err := w.pendingFiles()
	if err != nil {
		return err
	}

	w.logger.Info("Inbox watcher started", map[string]any{
		"dir":       w.cfg.Dir,
		"entity_id": w.cfg.EntityID,
		"pending":   len(existing),
		"debounce":  w.cfg.Debounce.String(),
	})

	w.wg.Add(2)
	go w.watchLoop(ctx, existing)
	go w.processLoop(ctx)
	return nil
}

// Close stops watching and waits for the file in progress to finish
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) pendingFiles() ([]string, error) {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && isCSV(e.Name()) {
			files = append(files, filepath.Join(w.cfg.Dir, e.Name()))
		}
	}
	return files, nil
}

// watchLoop debounces fsnotify events so a file still being written is not read early
func (w *Watcher) watchLoop(ctx context.Context, initial []string) {
	defer w.wg.Done()
	defer close(w.files)

	pending := make(map[string]time.Time, len(initial))
	for _, path := range initial {
		pending[path] = time.Time{}
	}

	ticker := time.NewTicker(w.cfg.Debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if filepath.Dir(ev.Name) != filepath.Clean(w.cfg.Dir) || !isCSV(ev.Name) {
				continue
			}
			pending[ev.Name] = w.timeProvider.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("Inbox watch error", map[string]any{"error": err.Error()})

		case <-ticker.C:
			for path, touched := range pending {
				if !touched.IsZero() && w.timeProvider.Since(touched).Std() < w.cfg.Debounce {
					continue
				}
				select {
				case w.files <- path:
					delete(pending, path)
				default:
					// processor busy; retry on the next tick
				}
			}
		}
	}
}

func (w *Watcher) processLoop(ctx context.Context) {
	defer w.wg.Done()
	for path := range w.files {
		w.processFile(ctx, path)
	}
}

func (w *Watcher) processFile(ctx context.Context, path string) {
	name := filepath.Base(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		w.logger.Error("Failed to read inbox file", map[string]any{"file": name, "error": err.Error()})
		w.move(path, failedDir)
		return
	}

	result, err := w.ingest(ctx, name, content)
	if err != nil {
		if ctx.Err() != nil {
			// shutting down; leave the file for the next start
			return
		}
		w.logger.Error("Failed to ingest inbox file", map[string]any{
			"file":      name,
			"entity_id": w.cfg.EntityID,
			"error":     err.Error(),
		})
		w.move(path, failedDir)
		return
	}

	w.logger.Info("Ingested inbox file", map[string]any{
		"file":               name,
		"entity_id":          w.cfg.EntityID,
		"uploaded_file_id":   result.UploadedFileID,
		"was_existing":       result.WasExisting,
		"raw_count":          result.RawCount,
		"needs_review_count": result.NeedsReviewCount,
	})
	w.move(path, processedDir)
}

func (w *Watcher) ingest(ctx context.Context, name string, content []byte) (*usecase.BatchResult, error) {
	if err := w.rules.EnsureDefaultRules(ctx, w.cfg.EntityID); err != nil {
		return nil, fmt.Errorf("seed default rules: %w", err)
	}
	return w.ingestion.IngestCSV(ctx, usecase.CSVBatchRequest{
		EntityID: w.cfg.EntityID,
		FileName: name,
		Content:  content,
	})
}

// move files a handled inbox entry away; a name clash gets a timestamp prefix
func (w *Watcher) move(path, subdir string) {
	name := filepath.Base(path)
	target := filepath.Join(w.cfg.Dir, subdir, name)
	if _, err := os.Stat(target); err == nil {
		target = filepath.Join(w.cfg.Dir, subdir, w.timeProvider.Now().UTC().Format("20060102T150405.000")+"-"+name)
	}

	if err := os.Rename(path, target); err != nil {
		w.logger.Error("Failed to move inbox file", map[string]any{
			"file":   name,
			"target": target,
			"error":  err.Error(),
		})
	}
}

func isCSV(name string) bool {
	base := filepath.Base(name)
	return !strings.HasPrefix(base, ".") && strings.EqualFold(filepath.Ext(base), ".csv")
}
