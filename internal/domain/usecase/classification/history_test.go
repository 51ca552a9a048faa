package classification

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPickHistoryCategory(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	entry := func(id string, cat *string, d int) entity.HistoryEntry {
		return entity.HistoryEntry{NormalizedTransactionID: id, CategoryID: cat, TransactionDate: day(d)}
	}

	testCases := []struct {
		name          string
		entries       []entity.HistoryEntry
		expectedOK    bool
		expectedCat   string
		expectedCount int
	}{
		{
			name:    "No history",
			entries: nil,
		},
		{
			name:    "Only uncategorized history",
			entries: []entity.HistoryEntry{entry("a", nil, 1), entry("b", nil, 2)},
		},
		{
			name: "Most frequent wins",
			entries: []entity.HistoryEntry{
				entry("a", strPtr("food"), 10),
				entry("b", strPtr("groceries"), 9),
				entry("c", strPtr("groceries"), 8),
			},
			expectedOK: true, expectedCat: "groceries", expectedCount: 2,
		},
		{
			name: "Tie goes to the newest occurrence",
			entries: []entity.HistoryEntry{
				entry("a", strPtr("groceries"), 3),
				entry("b", strPtr("food"), 9),
				entry("c", strPtr("groceries"), 2),
				entry("d", strPtr("food"), 1),
			},
			expectedOK: true, expectedCat: "food", expectedCount: 2,
		},
		{
			name: "Tie on the same date uses creation time",
			entries: []entity.HistoryEntry{
				{NormalizedTransactionID: "a", CategoryID: strPtr("food"), TransactionDate: day(5), CreatedAt: day(6)},
				{NormalizedTransactionID: "b", CategoryID: strPtr("groceries"), TransactionDate: day(5), CreatedAt: day(7)},
			},
			expectedOK: true, expectedCat: "groceries", expectedCount: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vote, ok := pickHistoryCategory(tc.entries)

			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, tc.expectedCat, vote.CategoryID)
				assert.Equal(t, tc.expectedCount, vote.Count)
			}
		})
	}
}
