package web

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the web server settings, read from the environment.
type Config struct {
	// Addr is the listen address of the dashboard.
	Addr string `env:"RISKNAV_ADDR" envDefault:":8080"`
	// DataDir is where positions.csv and policy.csv live.
	DataDir string `env:"RISKNAV_DATA" envDefault:"data"`
	// GeminiAPIKey enables the copilot's model-backed answers. Without
	// it the copilot still runs, with deterministic answers only.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// ParseEnv loads the configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
