// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds deployment defaults for the tools. CLI flags override these
// per run.
type Config struct {
	// Env selects the logging setup ("development" or "production").
	Env string
	// DefaultRegion is the ISO 3166-1 alpha-2 region used to parse numbers
	// that carry no country code. Deployments aimed at Brazilian or Mexican
	// exports set BR or MX respectively.
	DefaultRegion string
	// PreserveTelType keeps an existing ;TYPE= annotation on rewritten TEL
	// lines instead of forcing the standardized TYPE=CELL label.
	PreserveTelType bool
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("APP_ENV", "production"),
		DefaultRegion:   strings.ToUpper(getEnv("DEFAULT_REGION", "BR")),
		PreserveTelType: strings.EqualFold(getEnv("PRESERVE_TEL_TYPE", "false"), "true"),
	}

	if len(cfg.DefaultRegion) != 2 {
		return nil, fmt.Errorf("DEFAULT_REGION must be a two-letter region code, got %q", cfg.DefaultRegion)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
