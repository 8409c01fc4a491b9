package config

import (
	"fmt"
	"strings"

	"github.com/ledora/syllable/hyphen/patterns"
	"github.com/ledora/syllable/wordlist"
	"github.com/npillmayer/schuko/tracing"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if err := c.Hyphenation.validate(); err != nil {
		return fmt.Errorf("hyphenation: %w", err)
	}
	if _, err := c.Trace.TraceLevel(); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return nil
}

func (g *GameConfig) validate() error {
	if g.Locale != "" {
		if _, err := patterns.Lookup(g.Locale); err != nil {
			return fmt.Errorf("locale: %w", err)
		}
	}
	if g.File == "" {
		if _, err := wordlist.Find(g.List); err != nil {
			return fmt.Errorf("list: %w", err)
		}
	}
	if g.WordDuration <= 0 {
		return fmt.Errorf("word_duration must be > 0 (got %v)", g.WordDuration)
	}
	if g.RuneDuration < 0 {
		return fmt.Errorf("rune_duration must be >= 0 (got %v)", g.RuneDuration)
	}
	if g.Countdown < 0 {
		return fmt.Errorf("countdown must be >= 0 (got %d)", g.Countdown)
	}
	return nil
}

func (h *HyphenationConfig) validate() error {
	if h.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", h.Workers)
	}
	if h.LeftHyphenMin < 0 || h.RightHyphenMin < 0 {
		return fmt.Errorf("hyphenmins must be >= 0 (got %d, %d)", h.LeftHyphenMin, h.RightHyphenMin)
	}
	if (h.LeftHyphenMin > 0) != (h.RightHyphenMin > 0) {
		return fmt.Errorf("left and right hyphenmin must be set together (got %d, %d)", h.LeftHyphenMin, h.RightHyphenMin)
	}
	if h.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", h.CacheSize)
	}
	return nil
}

// TraceLevel returns the configured trace level.
func (t TraceConfig) TraceLevel() (tracing.TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(t.Level)) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", t.Level)
}
