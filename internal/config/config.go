// Package config holds the settings of the ledora command.
//
// Settings are read from an optional YAML file and from the environment,
// which takes precedence. A .env file in the working directory is loaded
// into the environment first.
package config

import (
	"time"
)

// Config is the root configuration.
type Config struct {
	Game        GameConfig        `yaml:"game"`
	Hyphenation HyphenationConfig `yaml:"hyphenation"`
	Trace       TraceConfig       `yaml:"trace"`
}

// GameConfig holds the settings of a reading exercise.
type GameConfig struct {
	Locale       string        `yaml:"locale"        env:"LEDORA_LOCALE"`
	List         string        `yaml:"list"          env:"LEDORA_LIST"          env-default:"PT1"`
	File         string        `yaml:"file"          env:"LEDORA_FILE"`
	Shuffle      bool          `yaml:"shuffle"       env:"LEDORA_SHUFFLE"       env-default:"true"`
	WordDuration time.Duration `yaml:"word_duration" env:"LEDORA_WORD_DURATION" env-default:"500ms"`
	RuneDuration time.Duration `yaml:"rune_duration" env:"LEDORA_RUNE_DURATION" env-default:"100ms"`
	Countdown    int           `yaml:"countdown"     env:"LEDORA_COUNTDOWN"     env-default:"3"`
}

// HyphenationConfig holds the settings of the syllable analysis. Zero
// hyphenmins select the values built into each language; otherwise both
// must be set.
type HyphenationConfig struct {
	Workers        int `yaml:"workers"          env:"LEDORA_WORKERS"          env-default:"4"`
	LeftHyphenMin  int `yaml:"left_hyphen_min"  env:"LEDORA_LEFT_HYPHEN_MIN"  env-default:"0"`
	RightHyphenMin int `yaml:"right_hyphen_min" env:"LEDORA_RIGHT_HYPHEN_MIN" env-default:"0"`
	CacheSize      int `yaml:"cache_size"       env:"LEDORA_CACHE_SIZE"       env-default:"1024"`
}

// TraceConfig holds tracing settings.
type TraceConfig struct {
	Level string `yaml:"level" env:"LEDORA_TRACE_LEVEL" env-default:"error"`
}

// HasHyphenMins reports whether the hyphenmins of the built-in languages
// are overridden.
func (h HyphenationConfig) HasHyphenMins() bool {
	return h.LeftHyphenMin > 0 || h.RightHyphenMin > 0
}
