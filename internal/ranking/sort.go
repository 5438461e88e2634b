package ranking

import (
	"sort"

	"github.com/jonathan/talentrank/internal/types"
)

// SortByOverall orders results by descending overall score. The sort is
// stable: equal scores keep their input order.
func SortByOverall(results []types.CandidateResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Overall > results[j].Overall
	})
}

// Top returns at most n leading results; n <= 0 returns all of them.
func Top(results []types.CandidateResult, n int) []types.CandidateResult {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
