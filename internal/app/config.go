package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// GridPath is an .hcl pipeline file or a directory of them.
	GridPath string
	// Entrypoint is the value injected on the reserved "entrypoint" input.
	Entrypoint string
	// Output is the node whose value the run returns.
	Output string

	LogFormat string
	LogLevel  string
	// RunTimeout bounds one run. Zero means the caller accepts an
	// unbounded wait.
	RunTimeout time.Duration
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		return nil, errors.New("Output is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
