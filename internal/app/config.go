package app

import (
	"errors"

	"github.com/specialistvlad/smallgraph/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string // .hcl file or directory

	LogFormat    string
	LogLevel     string
	OutputFormat string
	Strict       bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(report.FormatText)
	}
	if _, err := report.ParseFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}
