package evaluation

import "time"

// Difficulty labels how hard a golden case is expected to be for the
// retrieval system that produced the run.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties returns all valid difficulty values.
func ValidDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// IsValid checks if the difficulty value is one of the defined constants.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GoldenCase is one recorded retrieval run: the label that should have been
// found, the candidate labels the system returned, and the similarity score
// it assigned to each candidate.
type GoldenCase struct {
	ID           string     `json:"id"`
	Target       string     `json:"target"`
	Results      []string   `json:"results"`
	Similarities []float64  `json:"similarities"`
	Difficulty   Difficulty `json:"difficulty"`
}

// CaseResult holds the evaluation outcome for a single golden case.
type CaseResult struct {
	CaseID         string
	Difficulty     Difficulty
	TsRR           float64
	ReciprocalRank float64
	Hit            bool // target occurred somewhere in the results
}

// Summary holds aggregate metrics across all golden cases in a run.
type Summary struct {
	RunID              string
	TotalCases         int
	MeanTsRR           float64
	MeanReciprocalRank float64
	CasesWithHit       int
	ByDifficulty       map[Difficulty]*DifficultySummary
	Cases              []CaseResult `json:",omitempty"`
	Duration           time.Duration
}

// HitRate is the fraction of cases whose target occurred in the results.
func (s *Summary) HitRate() float64 {
	if s.TotalCases == 0 {
		return 0
	}
	return float64(s.CasesWithHit) / float64(s.TotalCases)
}

// DifficultySummary holds metrics grouped by case difficulty.
type DifficultySummary struct {
	Count              int
	MeanTsRR           float64
	MeanReciprocalRank float64
}
