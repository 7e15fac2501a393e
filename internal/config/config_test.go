package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Analyzer != "mock" {
		t.Errorf("Analyzer = %q, want mock", cfg.Analyzer)
	}
	if cfg.AnalysisDelay != 3*time.Second {
		t.Errorf("AnalysisDelay = %s, want 3s", cfg.AnalysisDelay)
	}
	if cfg.EventLog != "" {
		t.Errorf("EventLog = %q, want empty", cfg.EventLog)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GLOWPRO_ANALYZER", "mock")
	t.Setenv("GLOWPRO_ANALYSIS_DELAY", "250ms")
	t.Setenv("GLOWPRO_EVENT_LOG", "/tmp/glowpro.db")

	cfg := ConfigFromEnv()
	if cfg.AnalysisDelay != 250*time.Millisecond {
		t.Errorf("AnalysisDelay = %s, want 250ms", cfg.AnalysisDelay)
	}
	if cfg.EventLog != "/tmp/glowpro.db" {
		t.Errorf("EventLog = %q", cfg.EventLog)
	}
}

func TestConfigFromEnv_BadDelayKeepsDefault(t *testing.T) {
	t.Setenv("GLOWPRO_ANALYSIS_DELAY", "soon")

	cfg := ConfigFromEnv()
	if cfg.AnalysisDelay != 3*time.Second {
		t.Errorf("AnalysisDelay = %s, want default 3s", cfg.AnalysisDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero delay", Config{Analyzer: "mock"}, false},
		{"unknown analyzer", Config{Analyzer: "vision-api"}, true},
		{"empty analyzer", Config{}, true},
		{"negative delay", Config{Analyzer: "mock", AnalysisDelay: -time.Second}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GLOWPRO_ANALYSIS_DELAY=1s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// t.Setenv restores the variable afterwards; unset it for the load.
	t.Setenv("GLOWPRO_ANALYSIS_DELAY", "")
	os.Unsetenv("GLOWPRO_ANALYSIS_DELAY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := ConfigFromEnv().AnalysisDelay; got != time.Second {
		t.Errorf("AnalysisDelay = %s, want 1s", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
