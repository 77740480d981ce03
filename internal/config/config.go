package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors.
var (
	ErrFontSize  = errors.New("font_size must be between 6 and 72")
	ErrTabWidth  = errors.New("tab_width must be between 1 and 16")
	ErrHistory   = errors.New("history_limit must be positive")
	ErrThreshold = errors.New("highlight_threshold must be non-negative")
	ErrBatch     = errors.New("undo_batch_ms must be non-negative")
)

// Config holds all editor settings.
type Config struct {
	FontSize           int    `toml:"font_size"`
	TabWidth           int    `toml:"tab_width"`
	WordWrap           bool   `toml:"word_wrap"`
	HistoryLimit       int    `toml:"history_limit"`
	UndoBatchMS        int    `toml:"undo_batch_ms"`
	HighlightThreshold int    `toml:"highlight_threshold"`
	Theme              string `toml:"theme"`
	LogLevel           string `toml:"log_level"`
	StorePath          string `toml:"store_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FontSize:           14,
		TabWidth:           4,
		WordWrap:           false,
		HistoryLimit:       200,
		UndoBatchMS:        1000,
		HighlightThreshold: 64 * 1024,
		Theme:              "monokai",
		LogLevel:           "info",
		StorePath:          "",
	}
}

// BatchWindow returns the undo batching window as a duration.
func (c Config) BatchWindow() time.Duration {
	return time.Duration(c.UndoBatchMS) * time.Millisecond
}

// LoadFile reads path and overlays it on the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays INKPOT_* environment variables. Unset variables leave
// the current value alone; malformed numbers are an error.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv("INKPOT_FONT_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INKPOT_FONT_SIZE: %w", err)
		}
		c.FontSize = n
	}
	if v, ok := os.LookupEnv("INKPOT_TAB_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INKPOT_TAB_WIDTH: %w", err)
		}
		c.TabWidth = n
	}
	if v, ok := os.LookupEnv("INKPOT_WORD_WRAP"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("INKPOT_WORD_WRAP: %w", err)
		}
		c.WordWrap = b
	}
	if v, ok := os.LookupEnv("INKPOT_HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INKPOT_HISTORY_LIMIT: %w", err)
		}
		c.HistoryLimit = n
	}
	if v, ok := os.LookupEnv("INKPOT_THEME"); ok {
		c.Theme = v
	}
	if v, ok := os.LookupEnv("INKPOT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("INKPOT_STORE_PATH"); ok {
		c.StorePath = v
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.FontSize < 6 || c.FontSize > 72 {
		return ErrFontSize
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return ErrTabWidth
	}
	if c.HistoryLimit <= 0 {
		return ErrHistory
	}
	if c.HighlightThreshold < 0 {
		return ErrThreshold
	}
	if c.UndoBatchMS < 0 {
		return ErrBatch
	}
	return nil
}
