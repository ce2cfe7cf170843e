package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ranklab/tsrr/internal/evaluation"
	"github.com/ranklab/tsrr/internal/observability"
	"github.com/ranklab/tsrr/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("tsrr-evaluate", cfg.Env)

	cases, err := evaluation.LoadGoldenCases(cfg.Evaluation.CasesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Evaluation.CasesPath).Msg("failed to load golden cases")
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatal().Err(err).Msg("golden cases failed validation")
	}

	runner := evaluation.NewRunner()
	summary, err := runner.Run(context.Background(), cases)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	// "mean" reduction reports aggregates only; "none" keeps the per-case
	// score vector in the output.
	if cfg.Evaluation.Reduction == "mean" {
		summary.Cases = nil
	}

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinMeanTsRR: cfg.Evaluation.MinMeanTsRR,
		MinHitRate:  cfg.Evaluation.MinHitRate,
	})
	violations := guardrails.Check(summary)
	for _, v := range violations {
		log.Error().
			Str("metric", v.Metric).
			Float64("actual", v.Actual).
			Float64("threshold", v.Threshold).
			Msg("guardrail violated")
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal summary")
	}
	fmt.Println(string(out))

	if len(violations) > 0 {
		os.Exit(1)
	}
}
