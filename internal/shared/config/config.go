package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RepositoryURL   string
	RepositoryToken string
	Port            string
	Env             string
	HTTPTimeout     time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		RepositoryURL:   os.Getenv("REPOSITORY_URL"),
		RepositoryToken: os.Getenv("REPOSITORY_TOKEN"),
		Port:            os.Getenv("PORT"),
		Env:             os.Getenv("ENV"),
	}

	// Default values
	if cfg.RepositoryURL == "" {
		cfg.RepositoryURL = "https://webhook.wiral.ai/api"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	cfg.HTTPTimeout = 30 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
