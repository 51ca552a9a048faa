package override

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

type overrideDeps struct {
	uow            *persistencemocks.MockUnitOfWork
	normalizedRepo *persistencemocks.MockNormalizedTransactionRepository
	categoryRepo   *persistencemocks.MockCategoryRepository
	catRepo        *persistencemocks.MockCategorizationRepository
	overrideRepo   *persistencemocks.MockOverrideRuleRepository
	auditRepo      *persistencemocks.MockAuditLogRepository
	classification *usecasemocks.MockClassificationUseCase
	service        *Service
}

func setup(t *testing.T) *overrideDeps {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	ids := []string{"override-1", "categorization-new", "audit-1"}
	next := 0
	mockID := coremocks.NewMockIDGenerator(t)
	mockID.EXPECT().NewID().RunAndReturn(func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}).Maybe()

	d := &overrideDeps{
		uow:            persistencemocks.NewMockUnitOfWork(t),
		normalizedRepo: persistencemocks.NewMockNormalizedTransactionRepository(t),
		categoryRepo:   persistencemocks.NewMockCategoryRepository(t),
		catRepo:        persistencemocks.NewMockCategorizationRepository(t),
		overrideRepo:   persistencemocks.NewMockOverrideRuleRepository(t),
		auditRepo:      persistencemocks.NewMockAuditLogRepository(t),
		classification: usecasemocks.NewMockClassificationUseCase(t),
	}

	d.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	d.uow.EXPECT().GetNormalizedTransactionRepository(mock.Anything).Return(d.normalizedRepo).Maybe()
	d.uow.EXPECT().GetCategoryRepository(mock.Anything).Return(d.categoryRepo).Maybe()
	d.uow.EXPECT().GetCategorizationRepository(mock.Anything).Return(d.catRepo).Maybe()
	d.uow.EXPECT().GetOverrideRuleRepository(mock.Anything).Return(d.overrideRepo).Maybe()
	d.uow.EXPECT().GetAuditLogRepository(mock.Anything).Return(d.auditRepo).Maybe()

	d.service = NewService(d.uow, d.classification, mockID, mockTime, mockLogger)
	return d
}

func salaryTx() *entity.NormalizedTransaction {
	return &entity.NormalizedTransaction{
		ID:               "norm-1",
		EntityID:         "entity-1",
		RawTransactionID: "raw-1",
		DescriptionClean: "ACME CORP SALARY",
		Direction:        entity.DirectionInflow,
		AmountInCents:    8500000,
	}
}

func TestApplyOverride_Success(t *testing.T) {
	d := setup(t)
	salary := &entity.Category{ID: "cat-salary", Code: "SALARY_INCOME", Name: "Salary", LedgerType: entity.LedgerIncome}
	before := &entity.TransactionCategorization{
		ID:                      "categorization-old",
		EntityID:                "entity-1",
		NormalizedTransactionID: "norm-1",
		Method:                  entity.MethodUncategorized,
		Status:                  entity.StatusNeedsReview,
	}

	d.normalizedRepo.EXPECT().GetByID(mock.Anything, "entity-1", "norm-1").Return(salaryTx(), nil)
	d.categoryRepo.EXPECT().GetByCode(mock.Anything, "SALARY_INCOME").Return(salary, nil)
	d.catRepo.EXPECT().GetByNormalizedID(mock.Anything, "entity-1", "norm-1").Return(before, nil)
	d.overrideRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *entity.UserOverrideRule) bool {
			return r.ID == "override-1" &&
				r.Enabled &&
				r.CategoryID == "cat-salary" &&
				r.Matcher.Direction == entity.DirectionInflow &&
				r.Matcher.DescriptionContains == "ACME CORP SALARY" &&
				r.CreatedBy == "reviewer@example.com" &&
				r.SourceNormalizedTransactionID == "norm-1"
		})).
		Return(nil).Once()
	d.catRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(c *entity.TransactionCategorization) bool {
			return c.ID == "categorization-old" &&
				*c.CategoryID == "cat-salary" &&
				c.Method == entity.MethodManual &&
				c.Confidence == 1.0 &&
				c.Status == entity.StatusConfirmed &&
				c.Explanation == "User override" &&
				c.DecidedAt.Equal(fixedTime) &&
				*c.RuleID == "override-1"
		})).
		Return(nil).Once()
	d.auditRepo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(a *entity.AuditLog) bool {
			return a.Action == entity.AuditCategoryOverride &&
				a.Actor == "reviewer@example.com" &&
				a.TargetID == "norm-1" &&
				a.Reason == "Manual category selection" &&
				a.Before != nil && a.Before.Method == entity.MethodUncategorized &&
				a.After != nil && a.After.Method == entity.MethodManual
		})).
		Return(nil).Once()
	d.classification.EXPECT().InvalidateRules("entity-1").Once()

	result, err := d.service.ApplyOverride(context.Background(), usecase.OverrideRequest{
		EntityID:                "entity-1",
		NormalizedTransactionID: "norm-1",
		CategoryCode:            "SALARY_INCOME",
		Actor:                   "reviewer@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "override-1", result.OverrideRuleID)
	assert.Equal(t, entity.StatusConfirmed, result.Categorization.Status)
}

func TestApplyOverride_FirstCategorizationHasNoBeforeSnapshot(t *testing.T) {
	d := setup(t)

	d.normalizedRepo.EXPECT().GetByID(mock.Anything, "entity-1", "norm-1").Return(salaryTx(), nil)
	d.categoryRepo.EXPECT().GetByID(mock.Anything, "cat-salary").
		Return(&entity.Category{ID: "cat-salary", Code: "SALARY_INCOME"}, nil)
	d.catRepo.EXPECT().GetByNormalizedID(mock.Anything, "entity-1", "norm-1").Return(nil, errs.ErrNotFound)
	d.overrideRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.catRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(c *entity.TransactionCategorization) bool {
			return c.ID == "categorization-new"
		})).
		Return(nil)
	d.auditRepo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(a *entity.AuditLog) bool {
			return a.Before == nil && a.Reason == "Payroll from employer" && a.Actor == AnonymousActor
		})).
		Return(nil)
	d.classification.EXPECT().InvalidateRules("entity-1").Once()

	_, err := d.service.ApplyOverride(context.Background(), usecase.OverrideRequest{
		EntityID:                "entity-1",
		NormalizedTransactionID: "norm-1",
		CategoryID:              "cat-salary",
		Reason:                  "  Payroll from employer ",
	})

	require.NoError(t, err)
}

func TestApplyOverride_CategoryCodeIsNormalized(t *testing.T) {
	d := setup(t)
	salary := &entity.Category{ID: "cat-salary", Code: "SALARY_INCOME"}

	d.normalizedRepo.EXPECT().GetByID(mock.Anything, "entity-1", "norm-1").Return(salaryTx(), nil)
	d.categoryRepo.EXPECT().GetByCode(mock.Anything, "SALARY_INCOME").Return(salary, nil).Once()
	d.catRepo.EXPECT().GetByNormalizedID(mock.Anything, "entity-1", "norm-1").Return(nil, errs.ErrNotFound)
	d.overrideRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.catRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	d.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)
	d.classification.EXPECT().InvalidateRules("entity-1").Once()

	result, err := d.service.ApplyOverride(context.Background(), usecase.OverrideRequest{
		EntityID:                "entity-1",
		NormalizedTransactionID: "norm-1",
		CategoryCode:            " salary_income ",
	})

	require.NoError(t, err)
	assert.Equal(t, "cat-salary", *result.Categorization.CategoryID)
}

func TestApplyOverride_FailuresDoNotInvalidate(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(d *overrideDeps)
		expectedErr error
	}{
		{
			name: "Transaction not found",
			setupMocks: func(d *overrideDeps) {
				d.normalizedRepo.EXPECT().GetByID(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errs.ErrTransactionNotFound)
			},
			expectedErr: errs.ErrTransactionNotFound,
		},
		{
			name: "Category not found",
			setupMocks: func(d *overrideDeps) {
				d.normalizedRepo.EXPECT().GetByID(mock.Anything, mock.Anything, mock.Anything).Return(salaryTx(), nil)
				d.categoryRepo.EXPECT().GetByID(mock.Anything, "cat-salary").Return(nil, errs.ErrCategoryNotFound)
			},
			expectedErr: errs.ErrCategoryNotFound,
		},
		{
			name: "Audit append fails",
			setupMocks: func(d *overrideDeps) {
				d.normalizedRepo.EXPECT().GetByID(mock.Anything, mock.Anything, mock.Anything).Return(salaryTx(), nil)
				d.categoryRepo.EXPECT().GetByID(mock.Anything, "cat-salary").
					Return(&entity.Category{ID: "cat-salary"}, nil)
				d.catRepo.EXPECT().GetByNormalizedID(mock.Anything, mock.Anything, mock.Anything).Return(nil, errs.ErrNotFound)
				d.overrideRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				d.catRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
				d.auditRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			tc.setupMocks(d)

			result, err := d.service.ApplyOverride(context.Background(), usecase.OverrideRequest{
				EntityID:                "entity-1",
				NormalizedTransactionID: "norm-1",
				CategoryID:              "cat-salary",
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
			d.classification.AssertNotCalled(t, "InvalidateRules", mock.Anything)
		})
	}
}

func TestApplyOverride_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		req         usecase.OverrideRequest
		expectedErr error
	}{
		{"Missing entity", usecase.OverrideRequest{NormalizedTransactionID: "n", CategoryID: "c"}, errs.ErrInvalidEntityID},
		{"Missing transaction", usecase.OverrideRequest{EntityID: "e", CategoryID: "c"}, errs.ErrMissingField},
		{"Missing category", usecase.OverrideRequest{EntityID: "e", NormalizedTransactionID: "n"}, errs.ErrMissingField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			_, err := d.service.ApplyOverride(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
