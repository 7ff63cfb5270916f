package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != ":8080" {
		t.Errorf("port = %q, want :8080", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.BaseURL == "" {
		t.Error("base URL default missing")
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limit should default to disabled")
	}
	if cfg.RateLimit.MaxCalls != 2 || cfg.RateLimit.WindowSeconds != 60 {
		t.Errorf("rate limit defaults = %d/%ds", cfg.RateLimit.MaxCalls, cfg.RateLimit.WindowSeconds)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GOALAURA_SERVER_PORT", ":9090")
	t.Setenv("GOALAURA_GEMINI_API_KEY", "test-key")
	t.Setenv("GOALAURA_RATELIMIT_ENABLED", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != ":9090" {
		t.Errorf("port = %q, want env override :9090", cfg.Server.Port)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate limit should be enabled via env")
	}
}
