package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

const (
	entityID = "entity-1"
	hashA    = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
)

type ledgerDeps struct {
	uow        *persistencemocks.MockUnitOfWork
	uploadRepo *persistencemocks.MockUploadedFileRepository
	rawRepo    *persistencemocks.MockRawTransactionRepository
	catRepo    *persistencemocks.MockCategorizationRepository
	service    *Service
}

func setup(t *testing.T) *ledgerDeps {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockID := coremocks.NewMockIDGenerator(t)
	mockID.EXPECT().NewID().Return("upload-new").Maybe()

	d := &ledgerDeps{
		uow:        persistencemocks.NewMockUnitOfWork(t),
		uploadRepo: persistencemocks.NewMockUploadedFileRepository(t),
		rawRepo:    persistencemocks.NewMockRawTransactionRepository(t),
		catRepo:    persistencemocks.NewMockCategorizationRepository(t),
	}
	d.uow.EXPECT().GetUploadedFileRepository(mock.Anything).Return(d.uploadRepo).Maybe()
	d.uow.EXPECT().GetRawTransactionRepository(mock.Anything).Return(d.rawRepo).Maybe()
	d.uow.EXPECT().GetCategorizationRepository(mock.Anything).Return(d.catRepo).Maybe()

	d.service = NewService(d.uow, mockID, mockTime, mockLogger)
	return d
}

func (d *ledgerDeps) passThroughExecute() {
	d.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func csvRequest() usecase.CreateUploadRequest {
	return usecase.CreateUploadRequest{
		EntityID:    entityID,
		ContentHash: hashA,
		FileName:    "statement.csv",
		SourceType:  entity.SourceCSV,
	}
}

func TestContentHash(t *testing.T) {
	// sha256("test")
	assert.Equal(t, hashA, ContentHash([]byte("test")))
}

func TestStageUpload_NewUpload(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.uploadRepo.EXPECT().FindByHash(ctx, entityID, hashA).Return(nil, nil).Once()
	d.passThroughExecute()
	d.uploadRepo.EXPECT().Create(ctx, mock.MatchedBy(func(f *entity.UploadedFile) bool {
		return f.ID == "upload-new" && f.Status == entity.UploadStaged && f.ContentHash == hashA
	})).Return(nil).Once()
	d.uploadRepo.EXPECT().Update(ctx, mock.MatchedBy(func(f *entity.UploadedFile) bool {
		return f.RawCount == 3 && f.SkippedCount == 1
	})).Return(nil).Once()

	stageCalls := 0
	stage := func(txCtx context.Context, upload *entity.UploadedFile) (int, int, error) {
		stageCalls++
		assert.Equal(t, "upload-new", upload.ID)
		return 3, 1, nil
	}

	result, err := d.service.StageUpload(ctx, csvRequest(), stage)

	require.NoError(t, err)
	assert.Equal(t, 1, stageCalls)
	assert.Equal(t, &usecase.CreateUploadResult{
		UploadedFileID: "upload-new",
		WasExisting:    false,
		RawCount:       3,
		SkippedCount:   1,
	}, result)
}

func TestStageUpload_ExistingHashReturnsExisting(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	existing := &entity.UploadedFile{ID: "upload-old", EntityID: entityID, ContentHash: hashA, SkippedCount: 2}
	d.uploadRepo.EXPECT().FindByHash(ctx, entityID, hashA).Return(existing, nil).Once()
	d.rawRepo.EXPECT().CountByUpload(ctx, "upload-old").Return(int64(5), nil).Once()

	stage := func(context.Context, *entity.UploadedFile) (int, int, error) {
		t.Fatal("stage must not run for an existing upload")
		return 0, 0, nil
	}

	result, err := d.service.StageUpload(ctx, csvRequest(), stage)

	require.NoError(t, err)
	assert.True(t, result.WasExisting)
	assert.Equal(t, "upload-old", result.UploadedFileID)
	assert.Equal(t, 5, result.RawCount)
	assert.Equal(t, 2, result.SkippedCount)
	d.uow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStageUpload_ConcurrentDuplicateResolvesToWinner(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	winner := &entity.UploadedFile{ID: "upload-winner", EntityID: entityID, ContentHash: hashA}
	d.uploadRepo.EXPECT().FindByHash(ctx, entityID, hashA).Return(nil, nil).Once()
	d.passThroughExecute()
	d.uploadRepo.EXPECT().Create(ctx, mock.Anything).
		Return(fmt.Errorf("insert upload: %w", errs.ErrDuplicateUpload)).Once()
	d.uploadRepo.EXPECT().FindByHash(ctx, entityID, hashA).Return(winner, nil).Once()
	d.rawRepo.EXPECT().CountByUpload(ctx, "upload-winner").Return(int64(4), nil).Once()

	result, err := d.service.StageUpload(ctx, csvRequest(), func(context.Context, *entity.UploadedFile) (int, int, error) {
		t.Fatal("stage must not run when the insert loses")
		return 0, 0, nil
	})

	require.NoError(t, err)
	assert.True(t, result.WasExisting)
	assert.Equal(t, "upload-winner", result.UploadedFileID)
	assert.Equal(t, 4, result.RawCount)
}

func TestStageUpload_StageFailureRollsBack(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.uploadRepo.EXPECT().FindByHash(ctx, entityID, hashA).Return(nil, nil).Once()
	d.passThroughExecute()
	d.uploadRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	stageErr := errors.New("batch insert failed")
	result, err := d.service.StageUpload(ctx, csvRequest(), func(context.Context, *entity.UploadedFile) (int, int, error) {
		return 0, 0, stageErr
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, stageErr)
	d.uploadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreateUpload_HashFromContent(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	req := csvRequest()
	req.ContentHash = ""
	req.Content = []byte("test")

	d.uploadRepo.EXPECT().FindByHash(ctx, entityID, hashA).Return(nil, nil).Once()
	d.passThroughExecute()
	d.uploadRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	result, err := d.service.CreateUpload(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "upload-new", result.UploadedFileID)
	assert.Zero(t, result.RawCount)
}

func TestCreateUpload_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(r *usecase.CreateUploadRequest)
		expectedErr error
	}{
		{
			name:        "Empty entity",
			mutate:      func(r *usecase.CreateUploadRequest) { r.EntityID = "" },
			expectedErr: errs.ErrInvalidEntityID,
		},
		{
			name:        "Unknown source type",
			mutate:      func(r *usecase.CreateUploadRequest) { r.SourceType = "fax" },
			expectedErr: errs.ErrInvalidSourceType,
		},
		{
			name:        "No hash and no content",
			mutate:      func(r *usecase.CreateUploadRequest) { r.ContentHash = "" },
			expectedErr: errs.ErrMissingField,
		},
		{
			name:        "Malformed hash",
			mutate:      func(r *usecase.CreateUploadRequest) { r.ContentHash = "not-a-hash" },
			expectedErr: errs.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			req := csvRequest()
			tc.mutate(&req)

			result, err := d.service.CreateUpload(context.Background(), req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestGetUpload(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
		Return(&entity.UploadedFile{ID: "upload-1", EntityID: entityID, RawCount: 0}, nil).Once()
	d.rawRepo.EXPECT().CountByUpload(ctx, "upload-1").Return(int64(7), nil).Once()

	file, err := d.service.GetUpload(ctx, entityID, "upload-1")

	require.NoError(t, err)
	assert.Equal(t, 7, file.RawCount)
}

func TestCommitUpload(t *testing.T) {
	committedAt := fixedTime.Add(-time.Hour)

	testCases := []struct {
		name           string
		setupMocks     func(d *ledgerDeps, ctx context.Context)
		expectedStatus string
		expectedCount  int64
		expectedTime   *time.Time
		expectedErr    error
	}{
		{
			name: "Success",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.catRepo.EXPECT().CountNeedsReviewByUpload(ctx, "upload-1").Return(int64(0), nil).Twice()
				d.passThroughExecute()
				d.uploadRepo.EXPECT().GetForUpdate(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.uploadRepo.EXPECT().Update(ctx, mock.MatchedBy(func(f *entity.UploadedFile) bool {
					return f.Status == entity.UploadCommitted && f.CommittedAt != nil && f.CommittedAt.Equal(fixedTime)
				})).Return(nil).Once()
			},
			expectedStatus: usecase.CommitStatusCommitted,
			expectedTime:   &fixedTime,
		},
		{
			name: "Blocked before locking",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.catRepo.EXPECT().CountNeedsReviewByUpload(ctx, "upload-1").Return(int64(2), nil).Once()
			},
			expectedStatus: usecase.CommitStatusBlocked,
			expectedCount:  2,
		},
		{
			name: "Blocked by row that appeared before the lock",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.catRepo.EXPECT().CountNeedsReviewByUpload(ctx, "upload-1").Return(int64(0), nil).Once()
				d.passThroughExecute()
				d.uploadRepo.EXPECT().GetForUpdate(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.catRepo.EXPECT().CountNeedsReviewByUpload(ctx, "upload-1").Return(int64(1), nil).Once()
			},
			expectedStatus: usecase.CommitStatusBlocked,
			expectedCount:  1,
		},
		{
			name: "Already committed is idempotent",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{
						ID:          "upload-1",
						Status:      entity.UploadCommitted,
						CommittedAt: &committedAt,
					}, nil).Once()
			},
			expectedStatus: usecase.CommitStatusCommitted,
			expectedTime:   &committedAt,
		},
		{
			name: "Committed concurrently while waiting for the lock",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.catRepo.EXPECT().CountNeedsReviewByUpload(ctx, "upload-1").Return(int64(0), nil).Once()
				d.passThroughExecute()
				d.uploadRepo.EXPECT().GetForUpdate(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{
						ID:          "upload-1",
						Status:      entity.UploadCommitted,
						CommittedAt: &committedAt,
					}, nil).Once()
			},
			expectedStatus: usecase.CommitStatusCommitted,
			expectedTime:   &committedAt,
		},
		{
			name: "Upload not found",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(nil, errs.ErrUploadNotFound).Once()
			},
			expectedErr: errs.ErrUploadNotFound,
		},
		{
			name: "Update fails",
			setupMocks: func(d *ledgerDeps, ctx context.Context) {
				d.uploadRepo.EXPECT().GetByID(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.catRepo.EXPECT().CountNeedsReviewByUpload(ctx, "upload-1").Return(int64(0), nil).Twice()
				d.passThroughExecute()
				d.uploadRepo.EXPECT().GetForUpdate(ctx, entityID, "upload-1").
					Return(&entity.UploadedFile{ID: "upload-1", Status: entity.UploadStaged}, nil).Once()
				d.uploadRepo.EXPECT().Update(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			ctx := context.Background()
			tc.setupMocks(d, ctx)

			result, err := d.service.CommitUpload(ctx, entityID, "upload-1")

			if tc.expectedErr != nil {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "upload-1", result.UploadedFileID)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.Equal(t, tc.expectedCount, result.NeedsReviewCount)
			if tc.expectedTime == nil {
				assert.Nil(t, result.CommittedAt)
			} else {
				require.NotNil(t, result.CommittedAt)
				assert.True(t, tc.expectedTime.Equal(*result.CommittedAt))
			}
		})
	}
}
