package config

import (
	"os"
	"strconv"
	"time"

	"chartscout/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Report   ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// AnalysisConfig holds the analysis pipeline settings
type AnalysisConfig struct {
	// Budget is the per-stage cooperative timeout. It bounds worst-case
	// combinatorial blow-up on pathological inputs.
	Budget        time.Duration
	MaxSampleRows int
}

// ReportConfig holds report rendering settings
type ReportConfig struct {
	RenderHTML bool
}

// Load builds configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT_MS", 30*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT_MS", 10*time.Second),
		},
		Analysis: AnalysisConfig{
			Budget:        getEnvDuration("ANALYSIS_BUDGET_MS", 15*time.Second),
			MaxSampleRows: getEnvInt("MAX_SAMPLE_ROWS", 200),
		},
		Report: ReportConfig{
			RenderHTML: getEnvBool("REPORT_RENDER_HTML", true),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("SERVER_PORT cannot be empty")
	}
	if c.Analysis.Budget <= 0 {
		return errors.ConfigInvalid("ANALYSIS_BUDGET_MS must be positive")
	}
	if c.Analysis.MaxSampleRows <= 0 {
		return errors.ConfigInvalid("MAX_SAMPLE_ROWS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}
