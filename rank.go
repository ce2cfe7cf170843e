package tsrr

// rowStats holds the tie-group aggregates for one target row. The score
// depends only on these aggregates, never on positions inside the tie group,
// so the order equal-similarity candidates would sort in cannot affect it.
type rowStats struct {
	found bool

	// rPre is the number of candidates strictly outranking the tie group.
	rPre int

	// relevantInTie and irrelevantInTie partition the tie group: all
	// candidates whose similarity exactly equals the best matched similarity.
	relevantInTie   int
	irrelevantInTie int

	// relevantTotal and irrelevantTotal partition the whole row.
	relevantTotal   int
	irrelevantTotal int
}

// rankRow derives the tie-group aggregates for one row in a single pass over
// the candidates: the tie group is anchored at the highest similarity carried
// by any candidate equal to the target.
func rankRow[L comparable](target L, results []L, similarities []float64) rowStats {
	var st rowStats

	// Best similarity among matching candidates; this is the similarity of
	// the first match in descending-sorted order.
	var best float64
	for i, label := range results {
		if label != target {
			continue
		}
		if !st.found || similarities[i] > best {
			best = similarities[i]
		}
		st.found = true
	}
	if !st.found {
		return st
	}

	for i, label := range results {
		relevant := label == target
		if relevant {
			st.relevantTotal++
		} else {
			st.irrelevantTotal++
		}
		switch {
		case similarities[i] > best:
			st.rPre++
		case similarities[i] == best:
			if relevant {
				st.relevantInTie++
			} else {
				st.irrelevantInTie++
			}
		}
	}

	return st
}

// contamination is the fraction of all irrelevant candidates in the row that
// landed inside the tie group.
func (st rowStats) contamination() float64 {
	if st.irrelevantTotal == 0 {
		return 0
	}
	return float64(st.irrelevantInTie) / float64(st.irrelevantTotal)
}
