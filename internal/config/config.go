package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/hookstorm/internal/gesture"
	"github.com/dshills/hookstorm/internal/logging"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "HOOKSTORM_"

// Config holds the runtime settings for the hook engine.
type Config struct {
	// Display is the X display to attach to; empty means $DISPLAY.
	Display string

	// MultiClickMs is the multi-click chaining window in milliseconds.
	MultiClickMs int

	// LogLevel is the minimum logging level (debug, info, warn, error).
	LogLevel string

	// FilterScript is the path to a Lua event filter; empty disables filtering.
	FilterScript string

	// Monitor enables the interactive terminal event viewer.
	Monitor bool

	// QueueSize is the capacity of the event delivery queue.
	QueueSize int

	// raw preserves the original file bytes so unknown keys survive Save.
	raw []byte
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MultiClickMs: int(gesture.DefaultMultiClickInterval / time.Millisecond),
		LogLevel:     "info",
		QueueSize:    128,
	}
}

// Load reads the configuration file at path. A missing file is reported
// with ErrFileNotFound so callers can fall back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes configuration from JSON bytes. Absent keys keep their
// defaults.
func Parse(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	cfg := Default()
	cfg.raw = data

	if v := gjson.GetBytes(data, "display"); v.Exists() {
		cfg.Display = v.String()
	}
	if v := gjson.GetBytes(data, "gestures.multiClickMs"); v.Exists() {
		cfg.MultiClickMs = int(v.Int())
	}
	if v := gjson.GetBytes(data, "logging.level"); v.Exists() {
		cfg.LogLevel = v.String()
	}
	if v := gjson.GetBytes(data, "filter.script"); v.Exists() {
		cfg.FilterScript = v.String()
	}
	if v := gjson.GetBytes(data, "monitor.enabled"); v.Exists() {
		cfg.Monitor = v.Bool()
	}
	if v := gjson.GetBytes(data, "events.queueSize"); v.Exists() {
		cfg.QueueSize = int(v.Int())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays HOOKSTORM_-prefixed environment variables on top of
// the current settings.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvPrefix + "DISPLAY"); ok {
		c.Display = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "FILTER"); ok {
		c.FilterScript = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MULTI_CLICK_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMULTI_CLICK_MS: %v", ErrValidationFailed, EnvPrefix, err)
		}
		c.MultiClickMs = ms
	}
	return c.Validate()
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if c.MultiClickMs <= 0 {
		return fmt.Errorf("%w: multiClickMs must be positive, got %d", ErrValidationFailed, c.MultiClickMs)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("%w: queueSize must be positive, got %d", ErrValidationFailed, c.QueueSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrValidationFailed, c.LogLevel)
	}
	return nil
}

// Level returns the configured logging level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// MultiClickInterval returns the multi-click window as a duration.
func (c *Config) MultiClickInterval() time.Duration {
	return time.Duration(c.MultiClickMs) * time.Millisecond
}

// Save writes the configuration to path. Keys the program doesn't manage
// are carried over from the file the configuration was loaded from.
func (c *Config) Save(path string) error {
	data := c.raw
	if len(data) == 0 {
		data = []byte("{}")
	}
	var err error
	for _, kv := range []struct {
		key string
		val any
	}{
		{"display", c.Display},
		{"gestures.multiClickMs", c.MultiClickMs},
		{"logging.level", c.LogLevel},
		{"filter.script", c.FilterScript},
		{"monitor.enabled", c.Monitor},
		{"events.queueSize", c.QueueSize},
	} {
		data, err = sjson.SetBytes(data, kv.key, kv.val)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
