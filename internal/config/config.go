package config

import (
	"math"
	"slices"
	"time"

	"github.com/dshills/uievents/internal/backend"
)

// Config holds every setting.
type Config struct {
	Pointer PointerConfig `toml:"pointer" yaml:"pointer"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Bridge  BridgeConfig  `toml:"bridge" yaml:"bridge"`
}

// PointerConfig configures the reducers.
type PointerConfig struct {
	// ScaleFactor converts logical units to physical pixels.
	ScaleFactor      float64 `toml:"scale_factor" yaml:"scale_factor"`
	CollectCoalesced bool    `toml:"collect_coalesced" yaml:"collect_coalesced"`
	CollectPredicted bool    `toml:"collect_predicted" yaml:"collect_predicted"`
}

// LoggingConfig configures the package loggers.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error, fatal or disable.
	Level string `toml:"level" yaml:"level"`
}

// BridgeConfig configures the browser bridge.
type BridgeConfig struct {
	Addr string `toml:"addr" yaml:"addr"`

	// FrameInterval, when set, makes the bridge push a snapshot and end the
	// frame on a timer, as well as on explicit frame messages.
	FrameInterval string `toml:"frame_interval" yaml:"frame_interval"`

	// ReadLimit caps the size of one incoming message in bytes.
	ReadLimit int64 `toml:"read_limit" yaml:"read_limit"`
}

// Levels lists the accepted logging levels.
var Levels = []string{"debug", "info", "warn", "error", "fatal", "disable"}

// Default returns the built-in settings: scale 1, no sample history.
func Default() *Config {
	return &Config{
		Pointer: PointerConfig{ScaleFactor: 1},
		Logging: LoggingConfig{Level: "info"},
		Bridge: BridgeConfig{
			Addr:      "127.0.0.1:8686",
			ReadLimit: 64 << 10,
		},
	}
}

// Validate reports the first unusable setting as a *ValidationError.
func (c *Config) Validate() error {
	sf := c.Pointer.ScaleFactor
	if math.IsNaN(sf) || math.IsInf(sf, 0) || sf <= 0 {
		return &ValidationError{Path: "pointer.scale_factor", Message: "must be a positive number", Value: sf}
	}
	if !slices.Contains(Levels, c.Logging.Level) {
		return &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level}
	}
	if c.Bridge.Addr == "" {
		return &ValidationError{Path: "bridge.addr", Message: "must not be empty", Value: c.Bridge.Addr}
	}
	if c.Bridge.FrameInterval != "" {
		d, err := time.ParseDuration(c.Bridge.FrameInterval)
		if err != nil || d < 0 {
			return &ValidationError{Path: "bridge.frame_interval", Message: "must be a non-negative duration", Value: c.Bridge.FrameInterval}
		}
	}
	if c.Bridge.ReadLimit <= 0 {
		return &ValidationError{Path: "bridge.read_limit", Message: "must be positive", Value: c.Bridge.ReadLimit}
	}
	return nil
}

// Interval returns the parsed frame interval, or 0 when unset or invalid.
func (b BridgeConfig) Interval() time.Duration {
	if b.FrameInterval == "" {
		return 0
	}
	d, err := time.ParseDuration(b.FrameInterval)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// ToOptions returns the reducer options described by the pointer settings.
func (c *Config) ToOptions() backend.Options {
	return backend.DefaultOptions().
		WithScale(c.Pointer.ScaleFactor).
		WithCoalesced(c.Pointer.CollectCoalesced).
		WithPredicted(c.Pointer.CollectPredicted)
}
