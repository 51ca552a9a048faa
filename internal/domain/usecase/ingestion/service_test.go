package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/classification"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/ledger"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/persistence"
	storagemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/storage"
	usecasemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

const entityID = "entity-1"

const statementCSV = `date,amount,direction,description,reference
2024-06-01,250.00,debit,SWIGGY  ORDER 123,
2024-06-02,"50,000.00",credit,ACME SALARY JUNE,UTR123
2024-06-03,80.00,dr,UBER TRIP,
`

type ingestionDeps struct {
	uow            *persistencemocks.MockUnitOfWork
	uploadRepo     *persistencemocks.MockUploadedFileRepository
	rawRepo        *persistencemocks.MockRawTransactionRepository
	normalizedRepo *persistencemocks.MockNormalizedTransactionRepository
	ledger         *usecasemocks.MockLedgerUseCase
	classification *usecasemocks.MockClassificationUseCase
	blobs          *storagemocks.MockBlobStore
	service        *Service
}

func setup(t *testing.T) *ingestionDeps {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	var mu sync.Mutex
	next := 0
	mockID := coremocks.NewMockIDGenerator(t)
	mockID.EXPECT().NewID().RunAndReturn(func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("id-%d", next)
	}).Maybe()

	d := &ingestionDeps{
		uow:            persistencemocks.NewMockUnitOfWork(t),
		uploadRepo:     persistencemocks.NewMockUploadedFileRepository(t),
		rawRepo:        persistencemocks.NewMockRawTransactionRepository(t),
		normalizedRepo: persistencemocks.NewMockNormalizedTransactionRepository(t),
		ledger:         usecasemocks.NewMockLedgerUseCase(t),
		classification: usecasemocks.NewMockClassificationUseCase(t),
		blobs:          storagemocks.NewMockBlobStore(t),
	}
	d.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	d.uow.EXPECT().GetUploadedFileRepository(mock.Anything).Return(d.uploadRepo).Maybe()
	d.uow.EXPECT().GetRawTransactionRepository(mock.Anything).Return(d.rawRepo).Maybe()
	d.uow.EXPECT().GetNormalizedTransactionRepository(mock.Anything).Return(d.normalizedRepo).Maybe()

	d.service = NewService(d.uow, d.ledger, d.classification, d.blobs, mockID, mockTime, mockLogger, Config{Concurrency: 2})
	return d
}

// stageThrough runs the stage callback the way the ledger does for a new upload
func (d *ingestionDeps) stageThrough(t *testing.T, captured *usecase.CreateUploadRequest) {
	d.ledger.EXPECT().StageUpload(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req usecase.CreateUploadRequest, stage usecase.StageFunc) (*usecase.CreateUploadResult, error) {
			if captured != nil {
				*captured = req
			}
			rawCount, skipped, err := stage(ctx, &entity.UploadedFile{ID: "upload-1", EntityID: req.EntityID})
			if err != nil {
				return nil, err
			}
			return &usecase.CreateUploadResult{
				UploadedFileID: "upload-1",
				RawCount:       rawCount,
				SkippedCount:   skipped,
			}, nil
		}).Once()
}

func categorizationFor(tx *entity.NormalizedTransaction, status entity.CategorizationStatus) *entity.TransactionCategorization {
	return &entity.TransactionCategorization{
		ID:                      "cat-" + tx.ID,
		EntityID:                tx.EntityID,
		NormalizedTransactionID: tx.ID,
		Status:                  status,
	}
}

func manualCandidate() entity.Candidate {
	return entity.Candidate{
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		AmountInCents: 25000,
		Direction:     entity.DirectionOutflow,
		Description:   "  SWIGGY   ORDER  ",
		Reference:     "",
	}
}

func TestIngest_Success(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	rs := &entity.RuleSet{EntityID: entityID}

	d.rawRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.RawTransaction) bool {
		return r.ID == "id-1" && r.SourceType == entity.SourceManual && r.DescriptionRaw == "  SWIGGY   ORDER  "
	})).Return(nil).Once()
	d.normalizedRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.NormalizedTransaction) bool {
		return n.ID == "id-2" && n.RawTransactionID == "id-1" && n.DescriptionClean == "SWIGGY ORDER"
	})).Return(nil).Once()
	d.classification.EXPECT().RuleSet(ctx, entityID).Return(rs, nil).Once()
	d.classification.EXPECT().Classify(ctx, rs, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.RuleSet, tx *entity.NormalizedTransaction) (*entity.TransactionCategorization, error) {
			return categorizationFor(tx, entity.StatusConfirmed), nil
		}).Once()

	result, err := d.service.Ingest(ctx, usecase.IngestRequest{
		EntityID:   entityID,
		SourceType: entity.SourceManual,
		Candidate:  manualCandidate(),
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", result.RawTransaction.ID)
	assert.Equal(t, "id-2", result.Normalized.ID)
	assert.Equal(t, "cat-id-2", result.Categorization.ID)
}

func TestIngest_Failures(t *testing.T) {
	uploadID := "upload-1"

	testCases := []struct {
		name        string
		request     usecase.IngestRequest
		setupMocks  func(d *ingestionDeps, ctx context.Context)
		expectedErr error
	}{
		{
			name: "Committed upload",
			request: usecase.IngestRequest{
				EntityID:       entityID,
				SourceType:     entity.SourceManual,
				Candidate:      manualCandidate(),
				UploadedFileID: &uploadID,
			},
			setupMocks: func(d *ingestionDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetForShare(ctx, entityID, uploadID).
					Return(&entity.UploadedFile{ID: uploadID, Status: entity.UploadCommitted}, nil).Once()
			},
			expectedErr: errs.ErrUploadCommitted,
		},
		{
			name: "Unknown upload",
			request: usecase.IngestRequest{
				EntityID:       entityID,
				SourceType:     entity.SourceManual,
				Candidate:      manualCandidate(),
				UploadedFileID: &uploadID,
			},
			setupMocks: func(d *ingestionDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetForShare(ctx, entityID, uploadID).Return(nil, errs.ErrUploadNotFound).Once()
			},
			expectedErr: errs.ErrUploadNotFound,
		},
		{
			name: "Invalid direction",
			request: usecase.IngestRequest{
				EntityID:   entityID,
				SourceType: entity.SourceManual,
				Candidate: func() entity.Candidate {
					c := manualCandidate()
					c.Direction = "sideways"
					return c
				}(),
			},
			setupMocks:  func(d *ingestionDeps, ctx context.Context) {},
			expectedErr: errs.ErrInvalidDirection,
		},
		{
			name: "Raw insert fails",
			request: usecase.IngestRequest{
				EntityID:   entityID,
				SourceType: entity.SourceManual,
				Candidate:  manualCandidate(),
			},
			setupMocks: func(d *ingestionDeps, ctx context.Context) {
				d.rawRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			ctx := context.Background()
			tc.setupMocks(d, ctx)

			result, err := d.service.Ingest(ctx, tc.request)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.expectedErr)
			d.classification.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIngestCSV_ClassifiesEveryRowAgainstOneSnapshot(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	content := []byte(statementCSV)
	hash := ledger.ContentHash(content)
	rs := &entity.RuleSet{EntityID: entityID}

	d.blobs.EXPECT().Put(ctx, entityID+"/"+hash+"/statement.csv", content, "text/csv").
		Return("gs://uploads/"+entityID+"/"+hash+"/statement.csv", nil).Once()

	var staged usecase.CreateUploadRequest
	d.stageThrough(t, &staged)
	d.rawRepo.EXPECT().CreateBatch(ctx, mock.MatchedBy(func(raws []*entity.RawTransaction) bool {
		if len(raws) != 3 {
			return false
		}
		for _, r := range raws {
			if r.UploadedFileID == nil || *r.UploadedFileID != "upload-1" || r.SourceType != entity.SourceCSV {
				return false
			}
		}
		return raws[1].AmountInCents == 5000000 && raws[0].Provenance["line"] == 2
	})).Return(nil).Once()
	d.normalizedRepo.EXPECT().CreateBatch(ctx, mock.MatchedBy(func(ns []*entity.NormalizedTransaction) bool {
		return len(ns) == 3 && ns[0].DescriptionClean == "SWIGGY ORDER 123" && ns[1].ReferenceExtracted == "UTR123"
	})).Return(nil).Once()

	d.classification.EXPECT().RuleSet(ctx, entityID).Return(rs, nil).Once()
	d.classification.EXPECT().Classify(ctx, rs, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.RuleSet, tx *entity.NormalizedTransaction) (*entity.TransactionCategorization, error) {
			switch tx.DescriptionClean {
			case "SWIGGY ORDER 123":
				return categorizationFor(tx, entity.StatusConfirmed), nil
			case "ACME SALARY JUNE":
				return categorizationFor(tx, entity.StatusNeedsReview), nil
			default:
				return nil, errs.ErrDatabaseConnection
			}
		}).Times(3)
	d.classification.EXPECT().Record(ctx, mock.MatchedBy(func(tx *entity.NormalizedTransaction) bool {
		return tx.DescriptionClean == "UBER TRIP"
	}), classification.Uncategorized()).
		RunAndReturn(func(_ context.Context, tx *entity.NormalizedTransaction, _ entity.Decision) (*entity.TransactionCategorization, error) {
			return categorizationFor(tx, entity.StatusNeedsReview), nil
		}).Once()

	result, err := d.service.IngestCSV(ctx, usecase.CSVBatchRequest{
		EntityID: entityID,
		FileName: "statement.csv",
		Content:  content,
	})

	require.NoError(t, err)
	assert.Equal(t, hash, staged.ContentHash)
	assert.Equal(t, entity.SourceCSV, staged.SourceType)
	assert.Equal(t, "gs://uploads/"+entityID+"/"+hash+"/statement.csv", staged.StorageLocator)
	assert.Equal(t, &usecase.BatchResult{
		UploadedFileID:   "upload-1",
		RawCount:         3,
		ConfirmedCount:   1,
		NeedsReviewCount: 2,
	}, result)
}

func TestIngestCSV_RuleSetFailureStoresRowsUncategorized(t *testing.T) {
	testCases := []struct {
		name                string
		recordErr           error
		expectedNeedsReview int
		expectedFailed      int
	}{
		{
			name:                "Fallback stored",
			expectedNeedsReview: 3,
		},
		{
			name:           "Fallback store fails too",
			recordErr:      errs.ErrDatabaseConnection,
			expectedFailed: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			ctx := context.Background()

			d.blobs.EXPECT().Put(ctx, mock.Anything, mock.Anything, "text/csv").Return("local://x", nil).Once()
			d.stageThrough(t, nil)
			d.rawRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil).Once()
			d.normalizedRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil).Once()
			d.classification.EXPECT().RuleSet(ctx, entityID).Return(nil, errors.New("db blip")).Once()
			d.classification.EXPECT().Record(ctx, mock.Anything, classification.Uncategorized()).
				RunAndReturn(func(_ context.Context, tx *entity.NormalizedTransaction, _ entity.Decision) (*entity.TransactionCategorization, error) {
					if tc.recordErr != nil {
						return nil, tc.recordErr
					}
					return categorizationFor(tx, entity.StatusNeedsReview), nil
				}).Times(3)

			result, err := d.service.IngestCSV(ctx, usecase.CSVBatchRequest{
				EntityID: entityID,
				FileName: "statement.csv",
				Content:  []byte(statementCSV),
			})

			require.NoError(t, err)
			assert.Equal(t, 3, result.RawCount)
			assert.Equal(t, 0, result.ConfirmedCount)
			assert.Equal(t, tc.expectedNeedsReview, result.NeedsReviewCount)
			assert.Equal(t, tc.expectedFailed, result.FailedCount)
			d.classification.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIngest_RuleSetFailureStoresUncategorized(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.rawRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	d.normalizedRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	d.classification.EXPECT().RuleSet(ctx, entityID).Return(nil, errs.ErrDatabaseConnection).Once()
	d.classification.EXPECT().Record(ctx, mock.Anything, classification.Uncategorized()).
		RunAndReturn(func(_ context.Context, tx *entity.NormalizedTransaction, _ entity.Decision) (*entity.TransactionCategorization, error) {
			return categorizationFor(tx, entity.StatusNeedsReview), nil
		}).Once()

	result, err := d.service.Ingest(ctx, usecase.IngestRequest{
		EntityID:   entityID,
		SourceType: entity.SourceManual,
		Candidate:  manualCandidate(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusNeedsReview, result.Categorization.Status)
}

func TestIngest_OpenUploadIsCheckedUnderShareLock(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	uploadID := "upload-1"
	rs := &entity.RuleSet{EntityID: entityID}

	d.uploadRepo.EXPECT().GetForShare(ctx, entityID, uploadID).
		Return(&entity.UploadedFile{ID: uploadID, Status: entity.UploadStaged}, nil).Once()
	d.rawRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.RawTransaction) bool {
		return r.UploadedFileID != nil && *r.UploadedFileID == uploadID
	})).Return(nil).Once()
	d.normalizedRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	d.classification.EXPECT().RuleSet(ctx, entityID).Return(rs, nil).Once()
	d.classification.EXPECT().Classify(ctx, rs, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.RuleSet, tx *entity.NormalizedTransaction) (*entity.TransactionCategorization, error) {
			return categorizationFor(tx, entity.StatusConfirmed), nil
		}).Once()

	_, err := d.service.Ingest(ctx, usecase.IngestRequest{
		EntityID:       entityID,
		SourceType:     entity.SourceManual,
		Candidate:      manualCandidate(),
		UploadedFileID: &uploadID,
	})

	require.NoError(t, err)
	d.uploadRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestCSV_SameDescriptionRowsRunInOrder(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	rs := &entity.RuleSet{EntityID: entityID}
	content := []byte(`date,amount,direction,description
2024-06-01,10.00,debit,TEA STALL
2024-06-02,20.00,debit,BOOK SHOP
2024-06-03,30.00,debit,TEA STALL
2024-06-04,40.00,debit,TEA STALL
`)

	d.blobs.EXPECT().Put(ctx, mock.Anything, mock.Anything, "text/csv").Return("local://x", nil).Once()
	d.stageThrough(t, nil)
	d.rawRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil).Once()
	d.normalizedRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil).Once()
	d.classification.EXPECT().RuleSet(ctx, entityID).Return(rs, nil).Once()

	var mu sync.Mutex
	var teaAmounts []int64
	d.classification.EXPECT().Classify(ctx, rs, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.RuleSet, tx *entity.NormalizedTransaction) (*entity.TransactionCategorization, error) {
			if tx.DescriptionClean == "TEA STALL" {
				mu.Lock()
				teaAmounts = append(teaAmounts, tx.AmountInCents)
				mu.Unlock()
			}
			return categorizationFor(tx, entity.StatusNeedsReview), nil
		}).Times(4)

	result, err := d.service.IngestCSV(ctx, usecase.CSVBatchRequest{
		EntityID: entityID,
		FileName: "tea.csv",
		Content:  content,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.NeedsReviewCount)
	assert.Equal(t, []int64{1000, 3000, 4000}, teaAmounts)
}

func TestGroupByDescription(t *testing.T) {
	rows := []*entity.NormalizedTransaction{
		{ID: "a", DescriptionClean: "TEA"},
		{ID: "b", DescriptionClean: "BOOKS"},
		{ID: "c", DescriptionClean: "TEA"},
	}

	groups := groupByDescription(rows)

	require.Len(t, groups, 2)
	assert.Equal(t, []*entity.NormalizedTransaction{rows[0], rows[2]}, groups[0])
	assert.Equal(t, []*entity.NormalizedTransaction{rows[1]}, groups[1])
}

func TestIngestCSV_DocumentErrorStoresNothing(t *testing.T) {
	d := setup(t)

	result, err := d.service.IngestCSV(context.Background(), usecase.CSVBatchRequest{
		EntityID: entityID,
		FileName: "broken.csv",
		Content:  []byte("date,amount,direction,description\n2024-06-01,abc,debit,COFFEE\n"),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	var parseErr *errs.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
	d.blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	d.ledger.AssertNotCalled(t, "StageUpload", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestCSV_StorageFailureAbortsBeforeStaging(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.blobs.EXPECT().Put(ctx, mock.Anything, mock.Anything, "text/csv").
		Return("", errors.New("bucket unreachable")).Once()

	result, err := d.service.IngestCSV(ctx, usecase.CSVBatchRequest{
		EntityID: entityID,
		FileName: "statement.csv",
		Content:  []byte(statementCSV),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	d.ledger.AssertNotCalled(t, "StageUpload", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestCSV_DuplicateUploadIsNoOp(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.blobs.EXPECT().Put(ctx, mock.Anything, mock.Anything, "text/csv").Return("local://x", nil).Once()
	d.ledger.EXPECT().StageUpload(ctx, mock.Anything, mock.Anything).
		Return(&usecase.CreateUploadResult{UploadedFileID: "upload-old", WasExisting: true, RawCount: 3}, nil).Once()

	result, err := d.service.IngestCSV(ctx, usecase.CSVBatchRequest{
		EntityID: entityID,
		FileName: "statement.csv",
		Content:  []byte(statementCSV),
	})

	require.NoError(t, err)
	assert.True(t, result.WasExisting)
	assert.Equal(t, "upload-old", result.UploadedFileID)
	assert.Equal(t, 3, result.RawCount)
	d.classification.AssertNotCalled(t, "RuleSet", mock.Anything, mock.Anything)
}

func TestIngestExtracted_SkipsIncompleteCandidates(t *testing.T) {
	d := setup(t)
	ctx := context.Background()
	rs := &entity.RuleSet{EntityID: entityID}

	d.blobs.EXPECT().Put(ctx, mock.Anything, mock.Anything, "application/json").Return("local://doc", nil).Once()
	d.stageThrough(t, nil)
	d.rawRepo.EXPECT().CreateBatch(ctx, mock.MatchedBy(func(raws []*entity.RawTransaction) bool {
		return len(raws) == 2 &&
			raws[0].SourceType == entity.SourceAIExtraction &&
			raws[0].Direction == entity.DirectionOutflow &&
			raws[0].Provenance["documentType"] == "bank_statement" &&
			raws[0].Provenance["extractionConfidence"] == 0.92 &&
			raws[1].Direction == entity.DirectionInflow &&
			raws[1].Provenance["candidateIndex"] == 2
	})).Return(nil).Once()
	d.normalizedRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil).Once()
	d.classification.EXPECT().RuleSet(ctx, entityID).Return(rs, nil).Once()
	d.classification.EXPECT().Classify(ctx, rs, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.RuleSet, tx *entity.NormalizedTransaction) (*entity.TransactionCategorization, error) {
			return categorizationFor(tx, entity.StatusNeedsReview), nil
		}).Twice()

	result, err := d.service.IngestExtracted(ctx, usecase.ExtractedBatchRequest{
		EntityID:             entityID,
		FileName:             "scan.pdf",
		DocumentType:         "bank_statement",
		ExtractionConfidence: 0.92,
		Candidates: []usecase.ExtractedCandidate{
			{Date: "2024-06-01", Amount: "-120.50", Description: "ELECTRICITY BOARD"},
			{Date: "", Amount: "10.00", Description: "NO DATE"},
			{Date: "2024-06-03", Amount: "900", Direction: "credit", Description: "REFUND"},
			{Date: "2024-06-04", Amount: "15.00", Description: "   "},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "upload-1", result.UploadedFileID)
	assert.Equal(t, 2, result.RawCount)
	assert.Equal(t, 2, result.SkippedCount)
	assert.Equal(t, 2, result.NeedsReviewCount)
}

func TestIngestExtracted_NoCandidates(t *testing.T) {
	d := setup(t)

	result, err := d.service.IngestExtracted(context.Background(), usecase.ExtractedBatchRequest{EntityID: entityID})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrMissingField)
}

func TestCandidateFromExtracted(t *testing.T) {
	testCases := []struct {
		name              string
		input             usecase.ExtractedCandidate
		expectedDirection entity.Direction
		expectedCents     int64
		expectedErr       error
	}{
		{
			name:              "Negative amount becomes outflow",
			input:             usecase.ExtractedCandidate{Date: "2024-06-01", Amount: "-1,200.00", Description: "RENT"},
			expectedDirection: entity.DirectionOutflow,
			expectedCents:     120000,
		},
		{
			name:              "Positive amount becomes inflow",
			input:             usecase.ExtractedCandidate{Date: "01/06/2024", Amount: "75", Description: "INTEREST"},
			expectedDirection: entity.DirectionInflow,
			expectedCents:     7500,
		},
		{
			name:              "Explicit direction wins over sign",
			input:             usecase.ExtractedCandidate{Date: "2024-06-01", Amount: "-40", Direction: "CR", Description: "REVERSAL"},
			expectedDirection: entity.DirectionInflow,
			expectedCents:     4000,
		},
		{
			name:        "Missing date",
			input:       usecase.ExtractedCandidate{Amount: "1", Description: "X"},
			expectedErr: errs.ErrMissingField,
		},
		{
			name:        "Unparseable amount",
			input:       usecase.ExtractedCandidate{Date: "2024-06-01", Amount: "n/a", Description: "X"},
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name:        "Unknown direction",
			input:       usecase.ExtractedCandidate{Date: "2024-06-01", Amount: "1", Direction: "up", Description: "X"},
			expectedErr: errs.ErrInvalidDirection,
		},
		{
			name:        "Missing description",
			input:       usecase.ExtractedCandidate{Date: "2024-06-01", Amount: "1"},
			expectedErr: errs.ErrMissingField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			candidate, err := CandidateFromExtracted(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDirection, candidate.Direction)
			assert.Equal(t, tc.expectedCents, candidate.AmountInCents)
		})
	}
}
