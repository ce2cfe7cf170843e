package evaluation

import "sort"

// ReciprocalRank computes the classic reciprocal rank of the target in a
// candidate list ordered by descending similarity: 1/rank of the first
// occurrence, 0 if absent. Candidates sharing a similarity keep their input
// order, which is exactly the naive tie handling TsRR corrects for; both are
// reported side by side in evaluation summaries.
func ReciprocalRank(target string, results []string, similarities []float64) float64 {
	if len(results) == 0 {
		return 0
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return similarities[order[a]] > similarities[order[b]]
	})

	for rank, idx := range order {
		if results[idx] == target {
			return 1.0 / float64(rank+1)
		}
	}

	return 0
}
