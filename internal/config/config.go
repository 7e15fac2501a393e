package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the app and its subcommands.
type Config struct {
	// Analyzer selects the FaceAnalyzer implementation. Values: "mock".
	Analyzer string

	// AnalysisDelay is how long the mock analyzer pretends to work.
	// Default: 3s.
	AnalysisDelay time.Duration

	// EventLog is an optional SQLite file that receives the session event
	// log. Empty keeps the log in memory.
	EventLog string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Analyzer:      "mock",
		AnalysisDelay: 3 * time.Second,
	}
}

// LoadDotEnv loads variables from the given .env files (or ./.env) into the
// process environment. A missing file is not an error; existing variables
// are never overridden.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if a := os.Getenv("GLOWPRO_ANALYZER"); a != "" {
		cfg.Analyzer = a
	}
	if d := os.Getenv("GLOWPRO_ANALYSIS_DELAY"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.AnalysisDelay = parsed
		} else {
			fmt.Fprintf(os.Stderr, "warning: ignoring GLOWPRO_ANALYSIS_DELAY=%q: %v\n", d, err)
		}
	}
	if p := os.Getenv("GLOWPRO_EVENT_LOG"); p != "" {
		cfg.EventLog = p
	}

	return cfg
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	switch c.Analyzer {
	case "mock":
	default:
		return fmt.Errorf("unknown analyzer: %q", c.Analyzer)
	}
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("analysis delay must not be negative, got %s", c.AnalysisDelay)
	}
	return nil
}
