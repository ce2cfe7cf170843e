package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Env        string
	Evaluation EvaluationConfig
}

// EvaluationConfig holds evaluate CLI configuration
type EvaluationConfig struct {
	CasesPath   string
	Reduction   string
	MinMeanTsRR float64
	MinHitRate  float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),
		Evaluation: EvaluationConfig{
			CasesPath:   getEnv("EVAL_CASES_PATH", "config/golden_cases.json"),
			Reduction:   getEnv("EVAL_REDUCTION", "mean"),
			MinMeanTsRR: getEnvAsFloat("EVAL_MIN_MEAN_TSRR", 0),
			MinHitRate:  getEnvAsFloat("EVAL_MIN_HIT_RATE", 0),
		},
	}

	if cfg.Evaluation.Reduction != "mean" && cfg.Evaluation.Reduction != "none" {
		return nil, fmt.Errorf("invalid EVAL_REDUCTION %q (must be mean or none)", cfg.Evaluation.Reduction)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
