package rule

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/matcher"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

type ruleDeps struct {
	uow            *persistencemocks.MockUnitOfWork
	ruleRepo       *persistencemocks.MockRuleRepository
	overrideRepo   *persistencemocks.MockOverrideRuleRepository
	categoryRepo   *persistencemocks.MockCategoryRepository
	classification *usecasemocks.MockClassificationUseCase
	matcher        *matcher.Matcher
	service        *Service
}

func setup(t *testing.T) *ruleDeps {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockID := coremocks.NewMockIDGenerator(t)
	mockID.EXPECT().NewID().Return("rule-1").Maybe()

	d := &ruleDeps{
		uow:            persistencemocks.NewMockUnitOfWork(t),
		ruleRepo:       persistencemocks.NewMockRuleRepository(t),
		overrideRepo:   persistencemocks.NewMockOverrideRuleRepository(t),
		categoryRepo:   persistencemocks.NewMockCategoryRepository(t),
		classification: usecasemocks.NewMockClassificationUseCase(t),
		matcher:        matcher.New(mockLogger),
	}
	d.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	d.uow.EXPECT().GetRuleRepository(mock.Anything).Return(d.ruleRepo).Maybe()
	d.uow.EXPECT().GetOverrideRuleRepository(mock.Anything).Return(d.overrideRepo).Maybe()
	d.uow.EXPECT().GetCategoryRepository(mock.Anything).Return(d.categoryRepo).Maybe()

	d.service = NewService(d.uow, d.matcher, d.classification, mockID, mockTime, mockLogger)
	return d
}

var foodCategory = &entity.Category{ID: "cat-food", Code: "FOOD_DINING", Name: "Food & Dining", LedgerType: entity.LedgerExpense}

func TestCreateRule_Success(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.categoryRepo.EXPECT().GetByCode(ctx, "FOOD_DINING").Return(foodCategory, nil).Once()
	d.ruleRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.CategorizationRule) bool {
		return r.ID == "rule-1" && r.Enabled && r.CategoryID == "cat-food" && r.Priority == 5
	})).Return(nil).Once()
	d.classification.EXPECT().InvalidateRules("entity-1").Once()

	rule, err := d.service.CreateRule(ctx, usecase.CreateRuleRequest{
		EntityID:     "entity-1",
		Priority:     5,
		CategoryCode: " food_dining ",
		Matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			DescriptionRegex: "(swiggy|zomato)",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "rule-1", rule.ID)
	assert.True(t, d.matcher.Matches(rule.ID, rule.Matcher, &entity.NormalizedTransaction{
		DescriptionClean: "ZOMATO ORDER 1234",
		Direction:        entity.DirectionOutflow,
	}))
}

func TestCreateRule_Rejected(t *testing.T) {
	minAmount, maxAmount := int64(500), int64(100)

	testCases := []struct {
		name        string
		request     usecase.CreateRuleRequest
		setupMocks  func(d *ruleDeps, ctx context.Context)
		expectedErr error
	}{
		{
			name:        "Empty matcher",
			request:     usecase.CreateRuleRequest{EntityID: "entity-1", CategoryCode: "FOOD_DINING"},
			setupMocks:  func(d *ruleDeps, ctx context.Context) {},
			expectedErr: errs.ErrInvalidMatcher,
		},
		{
			name: "Min above max",
			request: usecase.CreateRuleRequest{
				EntityID:     "entity-1",
				CategoryCode: "FOOD_DINING",
				Matcher:      entity.MatcherSpec{MinAmountInCents: &minAmount, MaxAmountInCents: &maxAmount},
			},
			setupMocks:  func(d *ruleDeps, ctx context.Context) {},
			expectedErr: errs.ErrInvalidMatcher,
		},
		{
			name: "Regex does not compile",
			request: usecase.CreateRuleRequest{
				EntityID:     "entity-1",
				CategoryCode: "FOOD_DINING",
				Matcher:      entity.MatcherSpec{DescriptionRegex: "(swiggy"},
			},
			setupMocks:  func(d *ruleDeps, ctx context.Context) {},
			expectedErr: errs.ErrInvalidMatcher,
		},
		{
			name: "No category",
			request: usecase.CreateRuleRequest{
				EntityID: "entity-1",
				Matcher:  entity.MatcherSpec{DescriptionContains: "rent"},
			},
			setupMocks:  func(d *ruleDeps, ctx context.Context) {},
			expectedErr: errs.ErrMissingField,
		},
		{
			name: "Unknown category",
			request: usecase.CreateRuleRequest{
				EntityID:   "entity-1",
				CategoryID: "missing",
				Matcher:    entity.MatcherSpec{DescriptionContains: "rent"},
			},
			setupMocks: func(d *ruleDeps, ctx context.Context) {
				d.categoryRepo.EXPECT().GetByID(ctx, "missing").Return(nil, errs.ErrCategoryNotFound).Once()
			},
			expectedErr: errs.ErrCategoryNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setup(t)
			ctx := context.Background()
			tc.setupMocks(d, ctx)

			rule, err := d.service.CreateRule(ctx, tc.request)

			assert.Nil(t, rule)
			assert.ErrorIs(t, err, tc.expectedErr)
			d.ruleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			d.classification.AssertNotCalled(t, "InvalidateRules", mock.Anything)
		})
	}
}

func TestSetRuleEnabled(t *testing.T) {
	t.Run("Disable invalidates rule set", func(t *testing.T) {
		d := setup(t)
		ctx := context.Background()

		d.ruleRepo.EXPECT().SetEnabled(ctx, "entity-1", "rule-9", false).Return(nil).Once()
		d.ruleRepo.EXPECT().GetByID(ctx, "entity-1", "rule-9").
			Return(&entity.CategorizationRule{ID: "rule-9", EntityID: "entity-1", Enabled: false}, nil).Once()
		d.classification.EXPECT().InvalidateRules("entity-1").Once()

		rule, err := d.service.SetRuleEnabled(ctx, "entity-1", "rule-9", false)

		require.NoError(t, err)
		assert.False(t, rule.Enabled)
	})

	t.Run("Unknown rule", func(t *testing.T) {
		d := setup(t)
		ctx := context.Background()

		d.ruleRepo.EXPECT().SetEnabled(ctx, "entity-1", "nope", true).Return(errs.ErrRuleNotFound).Once()

		rule, err := d.service.SetRuleEnabled(ctx, "entity-1", "nope", true)

		assert.Nil(t, rule)
		assert.ErrorIs(t, err, errs.ErrRuleNotFound)
		d.classification.AssertNotCalled(t, "InvalidateRules", mock.Anything)
	})
}

func TestListRulesAndOverrides(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	rules := []*entity.CategorizationRule{{ID: "r1"}, {ID: "r2", Enabled: false}}
	overrides := []*entity.UserOverrideRule{{ID: "o1"}}
	d.ruleRepo.EXPECT().List(ctx, "entity-1").Return(rules, nil).Once()
	d.overrideRepo.EXPECT().List(ctx, "entity-1").Return(overrides, nil).Once()

	gotRules, err := d.service.ListRules(ctx, "entity-1")
	require.NoError(t, err)
	assert.Equal(t, rules, gotRules)

	gotOverrides, err := d.service.ListOverrideRules(ctx, "entity-1")
	require.NoError(t, err)
	assert.Equal(t, overrides, gotOverrides)

	_, err = d.service.ListRules(ctx, "")
	assert.ErrorIs(t, err, errs.ErrInvalidEntityID)
}

func seededCategories() []entity.Category {
	categories := make([]entity.Category, 0, len(defaultRules))
	for _, r := range defaultRules {
		categories = append(categories, entity.Category{ID: "id-" + r.categoryCode, Code: r.categoryCode})
	}
	return categories
}

func TestEnsureDefaultRules_SeedsOncePerProcess(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.categoryRepo.EXPECT().List(ctx).Return(seededCategories(), nil).Once()
	var seedKeys []string
	d.ruleRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, r *entity.CategorizationRule) (bool, error) {
			seedKeys = append(seedKeys, r.SeedKey)
			assert.Equal(t, "id-"+defaultRuleCode(r.SeedKey), r.CategoryID)
			return r.SeedKey != "salary", nil
		}).Times(len(defaultRules))
	d.classification.EXPECT().InvalidateRules("entity-1").Once()

	require.NoError(t, d.service.EnsureDefaultRules(ctx, "entity-1"))
	require.NoError(t, d.service.EnsureDefaultRules(ctx, "entity-1"))

	assert.Len(t, seedKeys, len(defaultRules))
	assert.Contains(t, seedKeys, "food-delivery")
	assert.Contains(t, seedKeys, "salary")
}

func TestEnsureDefaultRules_AlreadySeededDoesNotInvalidate(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.categoryRepo.EXPECT().List(ctx).Return(seededCategories(), nil).Once()
	d.ruleRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(false, nil).Times(len(defaultRules))

	require.NoError(t, d.service.EnsureDefaultRules(ctx, "entity-1"))
	d.classification.AssertNotCalled(t, "InvalidateRules", mock.Anything)
}

func TestEnsureDefaultRules_SkipsMissingCategories(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.categoryRepo.EXPECT().List(ctx).Return([]entity.Category{*foodCategory}, nil).Once()
	d.ruleRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(r *entity.CategorizationRule) bool {
		return r.SeedKey == "food-delivery"
	})).Return(true, nil).Once()
	d.classification.EXPECT().InvalidateRules("entity-1").Once()

	require.NoError(t, d.service.EnsureDefaultRules(ctx, "entity-1"))
}

func TestEnsureDefaultRules_FailureIsRetried(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	d.categoryRepo.EXPECT().List(ctx).Return(nil, errs.ErrDatabaseConnection).Once()
	assert.ErrorIs(t, d.service.EnsureDefaultRules(ctx, "entity-1"), errs.ErrDatabaseConnection)

	d.categoryRepo.EXPECT().List(ctx).Return(nil, nil).Once()
	assert.NoError(t, d.service.EnsureDefaultRules(ctx, "entity-1"))
}

func TestDefaultRulesAreValid(t *testing.T) {
	keys := map[string]bool{}
	for _, r := range defaultRules {
		assert.NoError(t, matcher.Validate(r.seedKey, r.matcher), r.seedKey)
		assert.False(t, keys[r.seedKey], "duplicate seed key %s", r.seedKey)
		keys[r.seedKey] = true
	}
}

func defaultRuleCode(seedKey string) string {
	for _, r := range defaultRules {
		if r.seedKey == seedKey {
			return r.categoryCode
		}
	}
	return ""
}
