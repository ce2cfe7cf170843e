package evaluation

import "fmt"

// GuardrailConfig sets the minimum aggregate quality a run must reach.
// A zero threshold disables its check.
type GuardrailConfig struct {
	MinMeanTsRR float64
	MinHitRate  float64
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	return &Guardrails{config: config}
}

// Violation records one guardrail the summary failed to meet.
type Violation struct {
	Metric    string
	Actual    float64
	Threshold float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %.4f below threshold %.4f", v.Metric, v.Actual, v.Threshold)
}

// Check returns every guardrail the summary violates; an empty slice means
// the run passed.
func (g *Guardrails) Check(s *Summary) []Violation {
	var violations []Violation

	if g.config.MinMeanTsRR > 0 && s.MeanTsRR < g.config.MinMeanTsRR {
		violations = append(violations, Violation{
			Metric:    "mean_tsrr",
			Actual:    s.MeanTsRR,
			Threshold: g.config.MinMeanTsRR,
		})
	}
	if g.config.MinHitRate > 0 && s.HitRate() < g.config.MinHitRate {
		violations = append(violations, Violation{
			Metric:    "hit_rate",
			Actual:    s.HitRate(),
			Threshold: g.config.MinHitRate,
		})
	}

	return violations
}
