// Package ingestion turns candidates from every adapter into raw, normalized and categorized rows.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/csvparser"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/normalizer"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/classification"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/ledger"
)

// Config bounds the batch classification fan-out
type Config struct {
	Concurrency int
}

// DefaultConfig returns the ingestion defaults
func DefaultConfig() Config {
	return Config{Concurrency: 8}
}

// Service implements usecase.IngestionUseCase
type Service struct {
	uow            persistence.UnitOfWork
	ledger         usecase.LedgerUseCase
	classification usecase.ClassificationUseCase
	blobs          storage.BlobStore
	idGenerator    core.IDGenerator
	timeProvider   core.TimeProvider
	logger         core.Logger
	config         Config
}

// NewService creates an ingestion service
func NewService(
	uow persistence.UnitOfWork,
	ledgerUseCase usecase.LedgerUseCase,
	classification usecase.ClassificationUseCase,
	blobs storage.BlobStore,
	idGenerator core.IDGenerator,
	timeProvider core.TimeProvider,
	logger core.Logger,
	config Config,
) *Service {
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConfig().Concurrency
	}
	return &Service{
		uow:            uow,
		ledger:         ledgerUseCase,
		classification: classification,
		blobs:          blobs,
		idGenerator:    idGenerator,
		timeProvider:   timeProvider,
		logger:         logger,
		config:         config,
	}
}

// batchRow is a validated candidate with the provenance it will be stored with
type batchRow struct {
	candidate  entity.Candidate
	provenance map[string]any
}

// batch is everything needed to stage one upload
type batch struct {
	entityID    string
	fileName    string
	sourceType  entity.SourceType
	contentHash string
	content     []byte
	contentType string
	rows        []batchRow
	skipped     int
}

// Ingest stores one candidate, then classifies it once the raw and normalized rows are durable
func (s *Service) Ingest(ctx context.Context, req usecase.IngestRequest) (*usecase.IngestResult, error) {
	if err := entity.ValidateEntityID(req.EntityID); err != nil {
		return nil, err
	}

	raw, err := entity.NewRawTransaction(
		s.idGenerator.NewID(),
		req.EntityID,
		req.SourceType,
		req.Candidate,
		req.Provenance,
		req.UploadedFileID,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	normalized := normalizer.Apply(s.idGenerator.NewID(), raw, s.timeProvider.Now())

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		if req.UploadedFileID != nil {
			// The share lock makes a concurrent commit recount after this row is visible
			upload, err := s.uow.GetUploadedFileRepository(txCtx).GetForShare(txCtx, req.EntityID, *req.UploadedFileID)
			if err != nil {
				return err
			}
			if upload.IsCommitted() {
				return fmt.Errorf("%w: %s", errs.ErrUploadCommitted, upload.ID)
			}
		}
		if err := s.uow.GetRawTransactionRepository(txCtx).Create(txCtx, raw); err != nil {
			return err
		}
		return s.uow.GetNormalizedTransactionRepository(txCtx).Create(txCtx, normalized)
	})
	if err != nil {
		s.logger.Error("Failed to store transaction", map[string]any{
			"entity_id": req.EntityID,
			"error":     err.Error(),
		})
		return nil, err
	}

	rs, err := s.classification.RuleSet(ctx, req.EntityID)
	if err != nil {
		s.logger.Error("Failed to load rule set", map[string]any{
			"entity_id": req.EntityID,
			"error":     err.Error(),
		})
	}
	categorization, err := s.categorize(ctx, rs, normalized)
	if err != nil {
		return nil, err
	}

	return &usecase.IngestResult{
		RawTransaction: raw,
		Normalized:     normalized,
		Categorization: categorization,
	}, nil
}

// IngestCSV parses the whole document before anything is stored; a bad row rejects the file
func (s *Service) IngestCSV(ctx context.Context, req usecase.CSVBatchRequest) (*usecase.BatchResult, error) {
	if err := entity.ValidateEntityID(req.EntityID); err != nil {
		return nil, err
	}

	candidates, err := csvparser.Parse(string(req.Content))
	if err != nil {
		s.logger.Warn("Rejected CSV document", map[string]any{
			"entity_id": req.EntityID,
			"file_name": req.FileName,
			"error":     err.Error(),
		})
		return nil, err
	}

	rows := make([]batchRow, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, batchRow{candidate: c})
	}

	return s.ingestBatch(ctx, batch{
		entityID:    req.EntityID,
		fileName:    req.FileName,
		sourceType:  entity.SourceCSV,
		contentHash: ledger.ContentHash(req.Content),
		content:     req.Content,
		contentType: "text/csv",
		rows:        rows,
	})
}

// IngestExtracted ingests document extraction output. Incomplete candidates are skipped.
func (s *Service) IngestExtracted(ctx context.Context, req usecase.ExtractedBatchRequest) (*usecase.BatchResult, error) {
	if err := entity.ValidateEntityID(req.EntityID); err != nil {
		return nil, err
	}
	if len(req.Candidates) == 0 {
		return nil, fmt.Errorf("%w: candidates", errs.ErrMissingField)
	}

	content, err := json.Marshal(req.Candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidRequest, err)
	}
	hash := strings.TrimSpace(req.ContentHash)
	if hash == "" {
		hash = ledger.ContentHash(content)
	}

	b := batch{
		entityID:    req.EntityID,
		fileName:    req.FileName,
		sourceType:  entity.SourceAIExtraction,
		contentHash: hash,
		content:     content,
		contentType: "application/json",
	}
	for i, ec := range req.Candidates {
		candidate, err := CandidateFromExtracted(ec)
		if err != nil {
			b.skipped++
			s.logger.Debug("Skipping extracted candidate", map[string]any{
				"entity_id": req.EntityID,
				"index":     i,
				"error":     err.Error(),
			})
			continue
		}
		b.rows = append(b.rows, batchRow{
			candidate: candidate,
			provenance: map[string]any{
				"documentType":         req.DocumentType,
				"extractionConfidence": req.ExtractionConfidence,
				"candidateIndex":       i,
			},
		})
	}

	return s.ingestBatch(ctx, b)
}

// CandidateFromExtracted converts extraction text fields into a candidate.
// An explicit direction wins; otherwise the amount's sign decides, negative
// meaning outflow.
func CandidateFromExtracted(ec usecase.ExtractedCandidate) (entity.Candidate, error) {
	if strings.TrimSpace(ec.Date) == "" {
		return entity.Candidate{}, fmt.Errorf("%w: date", errs.ErrMissingField)
	}
	date, err := csvparser.ParseDate(ec.Date)
	if err != nil {
		return entity.Candidate{}, err
	}

	cents, negative, err := entity.ParseSignedAmount(ec.Amount)
	if err != nil {
		return entity.Candidate{}, err
	}

	var direction entity.Direction
	if strings.TrimSpace(ec.Direction) != "" {
		direction, err = entity.ParseDirection(ec.Direction)
		if err != nil {
			return entity.Candidate{}, err
		}
	} else if negative {
		direction = entity.DirectionOutflow
	} else {
		direction = entity.DirectionInflow
	}

	candidate := entity.Candidate{
		Date:          date,
		AmountInCents: cents,
		Direction:     direction,
		Description:   strings.TrimSpace(ec.Description),
		Reference:     strings.TrimSpace(ec.Reference),
		Merchant:      strings.TrimSpace(ec.Merchant),
	}
	if err := candidate.Validate(); err != nil {
		return entity.Candidate{}, err
	}
	return candidate, nil
}

func (s *Service) ingestBatch(ctx context.Context, b batch) (*usecase.BatchResult, error) {
	locator, err := s.storeContent(ctx, b)
	if err != nil {
		return nil, err
	}

	var normalized []*entity.NormalizedTransaction
	stage := func(txCtx context.Context, upload *entity.UploadedFile) (int, int, error) {
		// A retried transaction calls stage again with fresh rows
		normalized = normalized[:0]

		raws := make([]*entity.RawTransaction, 0, len(b.rows))
		for _, row := range b.rows {
			uploadID := upload.ID
			raw, err := entity.NewRawTransaction(
				s.idGenerator.NewID(),
				b.entityID,
				b.sourceType,
				row.candidate,
				cloneProvenance(row.provenance),
				&uploadID,
				s.timeProvider,
			)
			if err != nil {
				return 0, 0, err
			}
			raws = append(raws, raw)
			normalized = append(normalized, normalizer.Apply(s.idGenerator.NewID(), raw, s.timeProvider.Now()))
		}

		if len(raws) == 0 {
			return 0, b.skipped, nil
		}
		if err := s.uow.GetRawTransactionRepository(txCtx).CreateBatch(txCtx, raws); err != nil {
			return 0, 0, err
		}
		if err := s.uow.GetNormalizedTransactionRepository(txCtx).CreateBatch(txCtx, normalized); err != nil {
			return 0, 0, err
		}
		return len(raws), b.skipped, nil
	}

	staged, err := s.ledger.StageUpload(ctx, usecase.CreateUploadRequest{
		EntityID:       b.entityID,
		ContentHash:    b.contentHash,
		FileName:       b.fileName,
		SourceType:     b.sourceType,
		StorageLocator: locator,
	}, stage)
	if err != nil {
		return nil, err
	}

	result := &usecase.BatchResult{
		UploadedFileID: staged.UploadedFileID,
		WasExisting:    staged.WasExisting,
		RawCount:       staged.RawCount,
		SkippedCount:   staged.SkippedCount,
	}
	if staged.WasExisting {
		s.logger.Info("Duplicate upload, nothing ingested", map[string]any{
			"entity_id":        b.entityID,
			"uploaded_file_id": staged.UploadedFileID,
		})
		return result, nil
	}

	s.classifyBatch(ctx, b.entityID, normalized, result)

	s.logger.Info("Batch ingested", map[string]any{
		"entity_id":          b.entityID,
		"uploaded_file_id":   result.UploadedFileID,
		"raw_count":          result.RawCount,
		"skipped_count":      result.SkippedCount,
		"confirmed_count":    result.ConfirmedCount,
		"needs_review_count": result.NeedsReviewCount,
		"failed_count":       result.FailedCount,
	})
	return result, nil
}

// classifyBatch categorizes every row against one rule snapshot. Rows sharing a
// cleaned description run in input order so each sees its predecessors in history.
// A row that cannot be classified is stored uncategorized; it never fails the batch.
func (s *Service) classifyBatch(
	ctx context.Context,
	entityID string,
	rows []*entity.NormalizedTransaction,
	result *usecase.BatchResult,
) {
	if len(rows) == 0 {
		return
	}

	rs, err := s.classification.RuleSet(ctx, entityID)
	if err != nil {
		s.logger.Error("Failed to load rule set for batch", map[string]any{
			"entity_id": entityID,
			"error":     err.Error(),
		})
	}

	var confirmed, needsReview, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)

	for _, group := range groupByDescription(rows) {
		g.Go(func() error {
			for _, tx := range group {
				categorization, err := s.categorize(ctx, rs, tx)
				switch {
				case err != nil:
					failed.Add(1)
				case categorization.Status == entity.StatusConfirmed:
					confirmed.Add(1)
				default:
					needsReview.Add(1)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	result.ConfirmedCount = int(confirmed.Load())
	result.NeedsReviewCount = int(needsReview.Load())
	result.FailedCount = int(failed.Load())
}

// categorize classifies tx, falling back to storing it uncategorized when the
// rule set is missing or the pipeline result could not be stored
func (s *Service) categorize(
	ctx context.Context,
	rs *entity.RuleSet,
	tx *entity.NormalizedTransaction,
) (*entity.TransactionCategorization, error) {
	if rs != nil {
		categorization, err := s.classification.Classify(ctx, rs, tx)
		if err == nil {
			return categorization, nil
		}
		s.logger.Warn("Classification failed, storing transaction uncategorized", map[string]any{
			"entity_id":                 tx.EntityID,
			"normalized_transaction_id": tx.ID,
			"error":                     err.Error(),
		})
	}

	categorization, err := s.classification.Record(ctx, tx, classification.Uncategorized())
	if err != nil {
		s.logger.Error("Failed to store uncategorized transaction", map[string]any{
			"entity_id":                 tx.EntityID,
			"normalized_transaction_id": tx.ID,
			"error":                     err.Error(),
		})
		return nil, err
	}
	return categorization, nil
}

// groupByDescription splits rows by cleaned description, keeping input order
// within and across groups
func groupByDescription(rows []*entity.NormalizedTransaction) [][]*entity.NormalizedTransaction {
	index := make(map[string]int, len(rows))
	var groups [][]*entity.NormalizedTransaction
	for _, tx := range rows {
		i, ok := index[tx.DescriptionClean]
		if !ok {
			i = len(groups)
			index[tx.DescriptionClean] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], tx)
	}
	return groups
}

func (s *Service) storeContent(ctx context.Context, b batch) (string, error) {
	if s.blobs == nil || len(b.content) == 0 {
		return "", nil
	}

	key := path.Join(b.entityID, b.contentHash, path.Base("/"+b.fileName))
	locator, err := s.blobs.Put(ctx, key, b.content, b.contentType)
	if err != nil {
		s.logger.Error("Failed to store upload content", map[string]any{
			"entity_id": b.entityID,
			"key":       key,
			"error":     err.Error(),
		})
		return "", fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return locator, nil
}

func cloneProvenance(p map[string]any) map[string]any {
	out := make(map[string]any, len(p)+2)
	for k, v := range p {
		out[k] = v
	}
	return out
}
