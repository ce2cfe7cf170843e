package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ranklab/tsrr"
)

// Runner scores a set of golden cases and aggregates the results.
type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

// Run evaluates every golden case. Cases are independent of each other; the
// run aborts on the first invalid case or on context cancellation and
// returns no partial summary.
func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:        uuid.NewString(),
		TotalCases:   len(cases),
		ByDifficulty: make(map[Difficulty]*DifficultySummary),
		Cases:        make([]CaseResult, 0, len(cases)),
	}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluation cancelled: %w", err)
		}

		score, err := tsrr.Score(c.Target, c.Results, c.Similarities)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.ID, err)
		}

		result := CaseResult{
			CaseID:         c.ID,
			Difficulty:     c.Difficulty,
			TsRR:           score,
			ReciprocalRank: ReciprocalRank(c.Target, c.Results, c.Similarities),
			Hit:            score > 0,
		}

		log.Debug().
			Str("case_id", c.ID).
			Float64("tsrr", result.TsRR).
			Float64("rr", result.ReciprocalRank).
			Msg("case evaluated")

		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary)
	summary.Duration = time.Since(start)
	return summary, nil
}

func (r *Runner) updateSummary(s *Summary, res CaseResult) {
	s.MeanTsRR += res.TsRR
	s.MeanReciprocalRank += res.ReciprocalRank
	if res.Hit {
		s.CasesWithHit++
	}
	s.Cases = append(s.Cases, res)

	if _, ok := s.ByDifficulty[res.Difficulty]; !ok {
		s.ByDifficulty[res.Difficulty] = &DifficultySummary{}
	}
	ds := s.ByDifficulty[res.Difficulty]
	ds.Count++
	ds.MeanTsRR += res.TsRR
	ds.MeanReciprocalRank += res.ReciprocalRank
}

func (r *Runner) finalizeSummary(s *Summary) {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.MeanTsRR /= n
		s.MeanReciprocalRank /= n
	}

	for _, ds := range s.ByDifficulty {
		if ds.Count > 0 {
			n := float64(ds.Count)
			ds.MeanTsRR /= n
			ds.MeanReciprocalRank /= n
		}
	}
}
