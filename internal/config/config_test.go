package config

import (
	"testing"
	"time"

	"chartscout/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Analysis.Budget != 15*time.Second {
		t.Errorf("budget = %v, want 15s", cfg.Analysis.Budget)
	}
	if cfg.Analysis.MaxSampleRows != 200 {
		t.Errorf("maxSampleRows = %d, want 200", cfg.Analysis.MaxSampleRows)
	}
	if !cfg.Report.RenderHTML {
		t.Error("renderHTML should default to true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ANALYSIS_BUDGET_MS", "500")
	t.Setenv("MAX_SAMPLE_ROWS", "50")
	t.Setenv("REPORT_RENDER_HTML", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Analysis.Budget != 500*time.Millisecond {
		t.Errorf("budget = %v, want 500ms", cfg.Analysis.Budget)
	}
	if cfg.Analysis.MaxSampleRows != 50 {
		t.Errorf("maxSampleRows = %d, want 50", cfg.Analysis.MaxSampleRows)
	}
	if cfg.Report.RenderHTML {
		t.Error("renderHTML should be disabled")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ANALYSIS_BUDGET_MS", "not-a-number")
	t.Setenv("MAX_SAMPLE_ROWS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.Budget != 15*time.Second {
		t.Errorf("malformed budget should fall back to default, got %v", cfg.Analysis.Budget)
	}
	if cfg.Analysis.MaxSampleRows != 200 {
		t.Errorf("empty maxSampleRows should fall back to default, got %d", cfg.Analysis.MaxSampleRows)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("MAX_SAMPLE_ROWS", "-5")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if errors.GetCode(err) != errors.CodeConfigInvalid {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.CodeConfigInvalid)
	}
}
