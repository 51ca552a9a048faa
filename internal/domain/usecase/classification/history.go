package classification

import (
	"sort"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"
)

// historyVote is the outcome of the same-description heuristic
type historyVote struct {
	CategoryID string
	Count      int
	Considered int
}

// pickHistoryCategory returns the most frequent category among entries.
// Ties go to the category whose most recent occurrence is newest.
// Entries without a category are ignored.
func pickHistoryCategory(entries []entity.HistoryEntry) (historyVote, bool) {
	ordered := append([]entity.HistoryEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.TransactionDate.Equal(b.TransactionDate) {
			return a.TransactionDate.After(b.TransactionDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.NormalizedTransactionID > b.NormalizedTransactionID
	})

	counts := make(map[string]int)
	newest := make(map[string]int)
	considered := 0
	for i, e := range ordered {
		if e.CategoryID == nil {
			continue
		}
		considered++
		id := *e.CategoryID
		if _, seen := newest[id]; !seen {
			newest[id] = i
		}
		counts[id]++
	}
	if considered == 0 {
		return historyVote{}, false
	}

	var best string
	for id, count := range counts {
		if best == "" ||
			count > counts[best] ||
			(count == counts[best] && newest[id] < newest[best]) {
			best = id
		}
	}
	return historyVote{CategoryID: best, Count: counts[best], Considered: considered}, true
}
