package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkpot.toml")
	body := "font_size = 18\ntheme = \"dracula\"\nword_wrap = true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.FontSize != 18 {
		t.Errorf("FontSize = %d, want 18", cfg.FontSize)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula", cfg.Theme)
	}
	if !cfg.WordWrap {
		t.Error("WordWrap = false, want true")
	}
	// Untouched keys keep their defaults.
	if cfg.TabWidth != Default().TabWidth {
		t.Errorf("TabWidth = %d, want default %d", cfg.TabWidth, Default().TabWidth)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkpot.toml")
	if err := os.WriteFile(path, []byte("font_size = ["), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile accepted malformed TOML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("INKPOT_FONT_SIZE", "20")
	t.Setenv("INKPOT_LOG_LEVEL", "debug")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.FontSize != 20 {
		t.Errorf("FontSize = %d, want 20", cfg.FontSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestApplyEnvMalformedNumber(t *testing.T) {
	t.Setenv("INKPOT_FONT_SIZE", "huge")

	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv accepted a non-numeric font size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"font too small", func(c *Config) { c.FontSize = 2 }, ErrFontSize},
		{"font too large", func(c *Config) { c.FontSize = 100 }, ErrFontSize},
		{"tab zero", func(c *Config) { c.TabWidth = 0 }, ErrTabWidth},
		{"history zero", func(c *Config) { c.HistoryLimit = 0 }, ErrHistory},
		{"threshold negative", func(c *Config) { c.HighlightThreshold = -1 }, ErrThreshold},
		{"batch negative", func(c *Config) { c.UndoBatchMS = -5 }, ErrBatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBatchWindow(t *testing.T) {
	cfg := Default()
	if got := cfg.BatchWindow(); got != time.Second {
		t.Errorf("BatchWindow() = %v, want 1s", got)
	}
}
