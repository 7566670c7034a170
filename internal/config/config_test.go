package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceFile {
		t.Errorf("Source: got %q, want %q", cfg.Source, SourceFile)
	}
	if cfg.LogPath != "logs.txt" {
		t.Errorf("LogPath: got %q", cfg.LogPath)
	}
	if cfg.GenerationConcurrency != 1 {
		t.Errorf("GenerationConcurrency: got %d, want 1", cfg.GenerationConcurrency)
	}
	if !cfg.PrettyJSON {
		t.Error("PrettyJSON should default to true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TRIAGE_SOURCE", "datadog")
	t.Setenv("GENERATION_CONCURRENCY", "4")
	t.Setenv("GENERATION_RATE_LIMIT", "2.5")
	t.Setenv("ANTHROPIC_MAX_TOKENS", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != SourceDataDog {
		t.Errorf("Source: got %q", cfg.Source)
	}
	if cfg.GenerationConcurrency != 4 || cfg.GenerationRateLimit != 2.5 || cfg.AnthropicMaxTokens != 1024 {
		t.Errorf("overrides: got %+v", cfg)
	}
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("GENERATION_CONCURRENCY", "many")
	if _, err := Load(); err == nil {
		t.Error("Load: expected error for invalid integer")
	}
}
