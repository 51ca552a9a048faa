package matcher

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txn-categorizer/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestMatcher(t *testing.T) *Matcher {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return New(mockLogger)
}

func TestMatches(t *testing.T) {
	tx := &entity.NormalizedTransaction{
		ID:                 "norm-1",
		DescriptionClean:   "UPI/412345678901/SWIGGY BLR",
		ReferenceExtracted: "412345678901",
		Direction:          entity.DirectionOutflow,
		AmountInCents:      45000,
	}

	testCases := []struct {
		name     string
		spec     entity.MatcherSpec
		expected bool
	}{
		{"Empty spec never matches", entity.MatcherSpec{}, false},
		{"Direction only", entity.MatcherSpec{Direction: entity.DirectionOutflow}, true},
		{"Wrong direction", entity.MatcherSpec{Direction: entity.DirectionInflow}, false},
		{"Contains is case-insensitive", entity.MatcherSpec{DescriptionContains: "swiggy"}, true},
		{"Contains misses", entity.MatcherSpec{DescriptionContains: "zomato"}, false},
		{"Regex is case-insensitive", entity.MatcherSpec{DescriptionRegex: `(swiggy|zomato)`}, true},
		{"Regex misses", entity.MatcherSpec{DescriptionRegex: `^salary`}, false},
		{"Min inclusive", entity.MatcherSpec{MinAmountInCents: int64Ptr(45000)}, true},
		{"Below min", entity.MatcherSpec{MinAmountInCents: int64Ptr(45001)}, false},
		{"Max inclusive", entity.MatcherSpec{MaxAmountInCents: int64Ptr(45000)}, true},
		{"Above max", entity.MatcherSpec{MaxAmountInCents: int64Ptr(44999)}, false},
		{"Exact reference", entity.MatcherSpec{Reference: "412345678901"}, true},
		{"Reference is exact", entity.MatcherSpec{Reference: "41234567890"}, false},
		{
			name: "All constraints hold",
			spec: entity.MatcherSpec{
				Direction:           entity.DirectionOutflow,
				MinAmountInCents:    int64Ptr(100),
				MaxAmountInCents:    int64Ptr(100000),
				DescriptionContains: "swiggy",
				DescriptionRegex:    `upi/\d+`,
				Reference:           "412345678901",
			},
			expected: true,
		},
		{
			name: "One failing constraint rejects",
			spec: entity.MatcherSpec{
				Direction:           entity.DirectionOutflow,
				DescriptionContains: "swiggy",
				MaxAmountInCents:    int64Ptr(100),
			},
			expected: false,
		},
	}

	m := newTestMatcher(t)
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ruleID := "rule-" + string(rune('a'+i))
			assert.Equal(t, tc.expected, m.Matches(ruleID, tc.spec, tx))
		})
	}
}

func TestMatches_BadRegexIsNotFatal(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Warn("Rule regex failed to compile, rule will not match",
		mock.MatchedBy(func(fields map[string]any) bool {
			return fields["rule_id"] == "rule-bad"
		})).Once()
	m := New(mockLogger)

	tx := &entity.NormalizedTransaction{DescriptionClean: "anything"}
	spec := entity.MatcherSpec{DescriptionRegex: `(unclosed`}

	assert.False(t, m.Matches("rule-bad", spec, tx))
	// Failure is cached, so the warning is logged once
	assert.False(t, m.Matches("rule-bad", spec, tx))
}

func TestCompile_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		spec    entity.MatcherSpec
		field   string
		wantErr bool
	}{
		{"Valid", entity.MatcherSpec{DescriptionRegex: `salary`, Direction: entity.DirectionInflow}, "", false},
		{"Empty", entity.MatcherSpec{}, "matcher", true},
		{"Bad regex", entity.MatcherSpec{DescriptionRegex: `[a-`}, "descriptionRegex", true},
		{"Min above max", entity.MatcherSpec{MinAmountInCents: int64Ptr(10), MaxAmountInCents: int64Ptr(5)}, "amount", true},
		{"Negative min", entity.MatcherSpec{MinAmountInCents: int64Ptr(-1)}, "minAmount", true},
		{"Unknown direction", entity.MatcherSpec{Direction: "sideways"}, "direction", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMatcher(t)
			err := m.Compile("rule-1", tc.spec)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidMatcher))
			var matcherErr *errs.MatcherError
			require.True(t, errors.As(err, &matcherErr))
			assert.Equal(t, tc.field, matcherErr.Field)
			assert.Equal(t, "rule-1", matcherErr.RuleID)
		})
	}
}

func TestForget_RecompilesChangedPattern(t *testing.T) {
	m := newTestMatcher(t)
	tx := &entity.NormalizedTransaction{DescriptionClean: "ACME CORP SALARY"}

	require.NoError(t, m.Compile("rule-1", entity.MatcherSpec{DescriptionRegex: `salary`}))
	assert.True(t, m.Matches("rule-1", entity.MatcherSpec{DescriptionRegex: `salary`}, tx))

	m.Forget("rule-1")
	assert.False(t, m.Matches("rule-1", entity.MatcherSpec{DescriptionRegex: `^zomato`}, tx))
}
