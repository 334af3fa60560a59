package app

import (
	"errors"
	"fmt"
)

// MaxGenerate bounds the size of a generated batch.
const MaxGenerate = 1_000_000

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BatchPath   string // .hcl file or directory; empty means no file source
	Generate    int    // number of generated records; negative disables
	ExpectedLen int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BatchPath != "" && cfg.Generate >= 0 {
		return nil, errors.New("a batch file and a generated batch cannot be used together")
	}
	if cfg.Generate > MaxGenerate {
		return nil, fmt.Errorf("generated batch size must be at most %d, got %d", MaxGenerate, cfg.Generate)
	}
	if cfg.ExpectedLen < 0 {
		return nil, fmt.Errorf("expected length must not be negative, got %d", cfg.ExpectedLen)
	}

	return &cfg, nil
}
