package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the two service secrets and the server settings. The
// geocoding key is optional: without it, city resolution silently
// degrades to the built-in fallback table. The Gemini key gates every
// generation feature and is checked before any attempt to generate.
type Config struct {
	Geocoding struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"geocoding"`
	Gemini struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"gemini"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// Load parses the embedded yaml defaults, then overrides them from a
// .env file (if present) and the process environment.
func Load(raw []byte) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Port = "8080"

	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	godotenv.Load()

	cfg.Geocoding.APIKey = getEnv("OPENCAGE_API_KEY", cfg.Geocoding.APIKey)
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
