package tsrr

import "math"

// batch is the uniform internal representation every entry point reduces to:
// one target per row, with index-aligned candidate and similarity rows.
type batch[L comparable] struct {
	targets      []L
	results      [][]L
	similarities [][]float64
}

// normalize validates a batch of targets against their candidate and
// similarity rows. Nothing is truncated or padded; the first mismatch aborts.
func normalize[L comparable](targets []L, results [][]L, similarities [][]float64) (*batch[L], error) {
	if len(results) != len(targets) {
		return nil, newShapeError("results has %d rows, expected one per target (%d)", len(results), len(targets))
	}
	if len(similarities) != len(targets) {
		return nil, newShapeError("similarities has %d rows, expected one per target (%d)", len(similarities), len(targets))
	}

	for i := range targets {
		if len(results[i]) != len(similarities[i]) {
			return nil, newShapeError("row %d: results has %d entries, similarities has %d", i, len(results[i]), len(similarities[i]))
		}
		for j, s := range similarities[i] {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return nil, newValueError("row %d: non-finite similarity %v at position %d", i, s, j)
			}
		}
	}

	return &batch[L]{targets: targets, results: results, similarities: similarities}, nil
}

// normalizeSingle wraps a single target as a batch of one.
func normalizeSingle[L comparable](target L, results []L, similarities []float64) (*batch[L], error) {
	if len(results) != len(similarities) {
		return nil, newShapeError("results has %d entries, similarities has %d", len(results), len(similarities))
	}
	return normalize([]L{target}, [][]L{results}, [][]float64{similarities})
}
