package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Punctuation.Preserve {
		t.Error("expected Preserve=true")
	}
	if !cfg.Classify.CompareCase || !cfg.Classify.FirstLetter || !cfg.Classify.Length {
		t.Errorf("expected all classification axes enabled, got %+v", cfg.Classify)
	}
	if cfg.Policy.GetAttempts != 10 {
		t.Errorf("expected GetAttempts=10, got %d", cfg.Policy.GetAttempts)
	}
	if cfg.Inspect.DecimalAccuracy != 2 {
		t.Errorf("expected DecimalAccuracy=2, got %d", cfg.Inspect.DecimalAccuracy)
	}
	if cfg.Random.Seed != -1 {
		t.Errorf("expected Seed=-1, got %d", cfg.Random.Seed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rearranger.yaml")

	content := `
classify:
  compare_case: false
policy:
  alphabetical: true
  limited_usage: true
newlines:
  kick_chance: 15
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Classify.CompareCase {
		t.Error("expected CompareCase=false")
	}
	if !cfg.Classify.FirstLetter {
		t.Error("expected FirstLetter default to survive partial config")
	}
	if !cfg.Policy.Alphabetical || !cfg.Policy.LimitedUsage {
		t.Errorf("expected alphabetical+limited usage, got %+v", cfg.Policy)
	}
	if cfg.Newlines.KickChance != 15 {
		t.Errorf("expected KickChance=15, got %d", cfg.Newlines.KickChance)
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rearranger.toml")

	content := `
[jabberwocky]
enabled = true
chance = 40

[random]
seed = 7
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Jabberwocky.Enabled || cfg.Jabberwocky.Chance != 40 {
		t.Errorf("expected jabberwocky enabled at 40, got %+v", cfg.Jabberwocky)
	}
	if cfg.Random.Seed != 7 {
		t.Errorf("expected Seed=7, got %d", cfg.Random.Seed)
	}
}

func TestLoad_InvalidCombination(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rearranger.yaml")

	content := `
filter:
  same: true
  different: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"filter same and different", func(c *Config) { c.Filter.Same, c.Filter.Different = true, true }, "mutually exclusive"},
		{"hard and multiple truncation", func(c *Config) { c.Newlines.HardTruncate, c.Newlines.TruncateMultiple = true, true }, "hard_truncate"},
		{"hard and soft truncation", func(c *Config) { c.Newlines.HardTruncate, c.Newlines.SoftTruncate = true, true }, "hard_truncate"},
		{"kick chance too high", func(c *Config) { c.Newlines.KickChance = 101 }, "kick_chance"},
		{"jabberwocky chance negative", func(c *Config) { c.Jabberwocky.Chance = -1 }, "jabberwocky"},
		{"negative accuracy", func(c *Config) { c.Inspect.DecimalAccuracy = -2 }, "decimal_accuracy"},
		{"no attempts with map words", func(c *Config) { c.Policy.MapWords, c.Policy.GetAttempts = true, 0 }, "get_attempts"},
		{"count range inverted", func(c *Config) { c.Limits.CountMin, c.Limits.CountMax = 5, 2 }, "count_min"},
		{"percent range inverted", func(c *Config) { c.Limits.PercentMin, c.Limits.PercentMax = 50, 10 }, "percent_min"},
		{"negative delay", func(c *Config) { c.Output.DelayMS = -5 }, "delay_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rearranger.yaml")

	content := `
inspect:
  decimal_accuracy: 4
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Inspect.DecimalAccuracy != 4 {
		t.Errorf("expected DecimalAccuracy=4, got %d", cfg.Inspect.DecimalAccuracy)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Policy.MapWords = true
	cfg.Files.Source = "corpus.txt"

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Policy.MapWords || loaded.Files.Source != "corpus.txt" {
		t.Errorf("saved settings not restored: %+v %+v", loaded.Policy, loaded.Files)
	}
}
