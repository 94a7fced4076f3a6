package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Geocoding.APIKey != "" || cfg.Gemini.APIKey != "" {
		t.Error("expected empty API keys by default")
	}
}

func TestLoadYAML(t *testing.T) {
	raw := []byte(`
geocoding:
  apiKey: "geo-key"
gemini:
  apiKey: "llm-key"
server:
  port: "9090"
`)

	cfg, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Geocoding.APIKey != "geo-key" {
		t.Errorf("expected geo-key, got %s", cfg.Geocoding.APIKey)
	}
	if cfg.Gemini.APIKey != "llm-key" {
		t.Errorf("expected llm-key, got %s", cfg.Gemini.APIKey)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OPENCAGE_API_KEY", "env-geo")
	t.Setenv("GEMINI_API_KEY", "env-llm")
	t.Setenv("SERVER_PORT", "3000")

	cfg, err := Load([]byte("server:\n  port: \"9090\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Geocoding.APIKey != "env-geo" {
		t.Errorf("expected env-geo, got %s", cfg.Geocoding.APIKey)
	}
	if cfg.Gemini.APIKey != "env-llm" {
		t.Errorf("expected env-llm, got %s", cfg.Gemini.APIKey)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected the environment to win, got %s", cfg.Server.Port)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load([]byte("geocoding: [")); err == nil {
		t.Fatal("expected error for malformed yaml, got nil")
	}
}
