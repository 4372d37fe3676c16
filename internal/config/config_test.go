package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Team != "Сибирь" {
		t.Errorf("team = %q, expected %q", cfg.Team, "Сибирь")
	}
	if cfg.OutputFile != "sibir_results_2024_25.xlsx" {
		t.Errorf("output file = %q", cfg.OutputFile)
	}
	if cfg.URL == "" {
		t.Error("url should have a default")
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v, expected 30s", cfg.Timeout())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("KHL_TEAM", "ЦСКА")
	t.Setenv("KHL_OUTPUT_FILE", "cska.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Team != "ЦСКА" {
		t.Errorf("team = %q, expected env override", cfg.Team)
	}
	if cfg.OutputFile != "cska.xlsx" {
		t.Errorf("output file = %q, expected env override", cfg.OutputFile)
	}
	// Untouched fields keep their defaults.
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("timeout_seconds = %d, expected default 30", cfg.TimeoutSeconds)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "team: Авангард\ntimeout_seconds: 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("KHL_CONFIG", path)
	t.Setenv("KHL_TEAM", "Сибирь")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Env wins over file, file wins over defaults.
	if cfg.Team != "Сибирь" {
		t.Errorf("team = %q, expected env to win over file", cfg.Team)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("timeout_seconds = %d, expected file value 10", cfg.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("KHL_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Error("expected an error for a zero timeout")
	}

	t.Setenv("KHL_TIMEOUT_SECONDS", "30")
	t.Setenv("KHL_TEAM", "")
	if _, err := Load(); err == nil {
		t.Error("expected an error for an empty team")
	}
}
