// Package tsrr computes the Tie-Sensitive Reciprocal Rank retrieval metric.
//
// TsRR scores how well a ranked candidate list surfaces a known-correct
// target label. Unlike plain reciprocal rank it does not trust the ordering
// of candidates that share a similarity score: the rank of the first match
// inside its tie group is the exact combinatorial expectation under uniform
// random tie-breaking, blended toward the worst case in proportion to how
// contaminated the tie group is with irrelevant candidates.
package tsrr

import "github.com/rs/zerolog/log"

type options struct {
	alpha *float64
}

// Option configures a scoring call.
type Option func(*options)

// WithAlpha sets the tie-sensitivity parameter of the superseded scoring
// formula.
//
// Deprecated: alpha no longer participates in the score. The value is
// accepted for compatibility, ignored, and a warning is logged.
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = &alpha
	}
}

func applyOptions(opts []Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.alpha != nil {
		log.Warn().
			Float64("alpha", *o.alpha).
			Msg("tsrr: alpha is deprecated and ignored; the combinatorial formula is always used")
	}
}

// Score computes TsRR for a single target against its candidate list.
// results and similarities must be index-aligned and of equal length.
// The score is in (0, 1] when the target occurs in results and exactly 0
// when it does not.
func Score[L comparable](target L, results []L, similarities []float64, opts ...Option) (float64, error) {
	applyOptions(opts)
	b, err := normalizeSingle(target, results, similarities)
	if err != nil {
		return 0, err
	}
	scores, err := b.scores()
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

// ScoreBatch computes one TsRR score per target. Row i of results and
// similarities belongs to targets[i]. The returned slice is index-aligned
// with targets.
func ScoreBatch[L comparable](targets []L, results [][]L, similarities [][]float64, opts ...Option) ([]float64, error) {
	applyOptions(opts)
	b, err := normalize(targets, results, similarities)
	if err != nil {
		return nil, err
	}
	return b.scores()
}

// MeanScore computes ScoreBatch reduced to its arithmetic mean.
func MeanScore[L comparable](targets []L, results [][]L, similarities [][]float64, opts ...Option) (float64, error) {
	scores, err := ScoreBatch(targets, results, similarities, opts...)
	if err != nil {
		return 0, err
	}
	return Mean(scores), nil
}

// Mean reduces a score vector to its arithmetic mean. The mean of an empty
// vector is 0.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func (b *batch[L]) scores() ([]float64, error) {
	out := make([]float64, len(b.targets))
	for i, target := range b.targets {
		score, err := scoreRow(target, b.results[i], b.similarities[i])
		if err != nil {
			return nil, err
		}
		out[i] = score
	}
	return out, nil
}

func scoreRow[L comparable](target L, results []L, similarities []float64) (float64, error) {
	st := rankRow(target, results, similarities)
	if !st.found {
		return 0, nil
	}

	// Expected position of the first relevant item inside the tie group
	// under a uniform random shuffle of its members.
	el, err := expectedRank(0, st.irrelevantInTie, st.relevantInTie)
	if err != nil {
		return 0, err
	}

	// Worst case: every irrelevant tie member lands ahead of the first
	// relevant one.
	lMax := float64(st.irrelevantInTie + 1)

	tau := st.contamination()
	eTau := (1-tau)*el + tau*lMax

	return 1 / (float64(st.rPre) + eTau), nil
}
