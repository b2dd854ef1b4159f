package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPort    = "8000"
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"
)

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Config struct {
	Port          string
	DatabasePath  string
	MigrationsURL string
	LLM           LLMConfig
}

// Load reads .env when present, then the environment. The LLM credential
// and the database path have no defaults: without them the process must
// not start.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		DatabasePath:  os.Getenv("DB_PATH"),
		MigrationsURL: os.Getenv("MIGRATIONS_URL"),
		LLM: LLMConfig{
			APIKey:  os.Getenv("LLM_API_KEY"),
			BaseURL: os.Getenv("LLM_BASE_URL"),
			Model:   os.Getenv("LLM_MODEL"),
		},
	}

	if cfg.LLM.APIKey == "" {
		return nil, errors.New("LLM_API_KEY not found in environment variables")
	}

	if cfg.DatabasePath == "" {
		return nil, errors.New("DB_PATH not found in environment variables")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.MigrationsURL == "" {
		cfg.MigrationsURL = "file://./migrations"
	}

	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = defaultBaseURL
	}

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModel
	}

	return cfg, nil
}
