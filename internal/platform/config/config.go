package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Seed            Seed
	TextGen         TextGen
}

// Seed controls demo data loading at startup.
type Seed struct {
	Enabled bool
	// File overrides the embedded fixture when set.
	File string
}

// TextGen points at the external text generator. An empty URL disables
// document generation.
type TextGen struct {
	URL    string
	APIKey string
	Model  string
	// Timeout bounds each call; zero waits indefinitely.
	Timeout time.Duration
}

// Load reads an optional .env file and then builds the config from the
// environment. Variables already set win over the file.
func Load() (Server, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:           getString("LEGALFLOW_ADDR", ":8080"),
		LogLevel:       strings.ToLower(getString("LOG_LEVEL", "info")),
		AllowedOrigins: splitList(getString("CORS_ALLOWED_ORIGINS", "http://localhost:9002")),
		Seed: Seed{
			File: os.Getenv("SEED_FILE"),
		},
		TextGen: TextGen{
			URL:    os.Getenv("TEXTGEN_URL"),
			APIKey: os.Getenv("TEXTGEN_API_KEY"),
			Model:  os.Getenv("TEXTGEN_MODEL"),
		},
	}

	var err error
	if cfg.Seed.Enabled, err = getBool("SEED_DEMO_DATA", true); err != nil {
		return Server{}, err
	}
	if cfg.TextGen.Timeout, err = getDuration("DOCUMENT_TIMEOUT", 60*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Server{}, err
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Server{}, fmt.Errorf("LOG_LEVEL: unknown level %q", cfg.LogLevel)
	}
	return cfg, nil
}

func getString(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func getBool(name string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", name, err)
	}
	return v, nil
}

func getDuration(name string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	if raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return d, nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
