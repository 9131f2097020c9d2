package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	opts := c.ToOptions()
	if opts.ScaleFactor != 1 || opts.CollectCoalesced || opts.CollectPredicted {
		t.Errorf("ToOptions() = %+v, want the cheapest options", opts)
	}
	if c.Bridge.Interval() != 0 {
		t.Errorf("Interval() = %v, want 0", c.Bridge.Interval())
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "uievents.toml", `
[pointer]
scale_factor = 2.0
collect_coalesced = true

[bridge]
frame_interval = "16ms"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Pointer.ScaleFactor != 2 || !c.Pointer.CollectCoalesced || c.Pointer.CollectPredicted {
		t.Errorf("Pointer = %+v", c.Pointer)
	}
	if c.Bridge.Interval() != 16*time.Millisecond {
		t.Errorf("Interval() = %v, want 16ms", c.Bridge.Interval())
	}
	// Untouched settings keep their defaults.
	if c.Logging.Level != "info" || c.Bridge.Addr != Default().Bridge.Addr {
		t.Errorf("defaults lost: %+v", c)
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"uievents.yaml", "uievents.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "pointer:\n  collect_predicted: true\nlogging:\n  level: debug\n")
			c, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !c.Pointer.CollectPredicted || c.Logging.Level != "debug" {
				t.Errorf("Load() = %+v", c)
			}
			if c.Pointer.ScaleFactor != 1 {
				t.Errorf("ScaleFactor = %v, want default 1", c.Pointer.ScaleFactor)
			}
		})
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	c, err := Load(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Pointer.ScaleFactor != 1 {
		t.Errorf("empty file should yield defaults, got %+v", c)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *c != *Default() {
		t.Errorf("Load() = %+v, want defaults", c)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		check   func(error) bool
	}{
		{
			"unsupported extension", "uievents.json", `{}`,
			func(err error) bool { return errors.Is(err, ErrUnsupportedFormat) },
		},
		{
			"toml syntax", "bad.toml", "[pointer\nscale_factor = 1.0\n",
			func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe) && pe.Line > 0
			},
		},
		{
			"toml unknown key", "typo.toml", "[pointer]\nscale_facter = 2.0\n",
			func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe)
			},
		},
		{
			"yaml unknown key", "typo.yaml", "logging:\n  levle: debug\n",
			func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe)
			},
		},
		{
			"invalid value", "zero.toml", "[pointer]\nscale_factor = 0.0\n",
			func(err error) bool {
				var ve *ValidationError
				return errors.As(err, &ve) && ve.Path == "pointer.scale_factor"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !tt.check(err) {
				t.Errorf("Load() error = %v (%T)", err, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"negative scale", func(c *Config) { c.Pointer.ScaleFactor = -1 }, "pointer.scale_factor"},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"empty addr", func(c *Config) { c.Bridge.Addr = "" }, "bridge.addr"},
		{"bad interval", func(c *Config) { c.Bridge.FrameInterval = "soon" }, "bridge.frame_interval"},
		{"negative interval", func(c *Config) { c.Bridge.FrameInterval = "-1s" }, "bridge.frame_interval"},
		{"zero read limit", func(c *Config) { c.Bridge.ReadLimit = 0 }, "bridge.read_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Path != tt.path {
				t.Errorf("Path = %q, want %q", ve.Path, tt.path)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"UIEVENTS_SCALE_FACTOR":      "1.5",
		"UIEVENTS_COLLECT_COALESCED": "true",
		"UIEVENTS_COLLECT_PREDICTED": "1",
		"UIEVENTS_LOG_LEVEL":         "WARN",
		"UIEVENTS_BRIDGE_ADDR":       ":9000",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	c := Default()
	if err := c.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if c.Pointer.ScaleFactor != 1.5 || !c.Pointer.CollectCoalesced || !c.Pointer.CollectPredicted {
		t.Errorf("Pointer = %+v", c.Pointer)
	}
	if c.Logging.Level != "warn" || c.Bridge.Addr != ":9000" {
		t.Errorf("Logging = %+v, Bridge = %+v", c.Logging, c.Bridge)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "UIEVENTS_COLLECT_COALESCED" {
			return "maybe", true
		}
		return "", false
	}
	err := Default().applyEnv(lookup)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Path != "pointer.collect_coalesced" {
		t.Errorf("applyEnv() = %v, want a validation error for collect_coalesced", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "uievents.toml", "[pointer]\nscale_factor = 2.0\n")
	t.Setenv("UIEVENTS_SCALE_FACTOR", "3")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Pointer.ScaleFactor != 3 {
		t.Errorf("ScaleFactor = %v, want the environment's 3", c.Pointer.ScaleFactor)
	}
}

func TestLoggingApply(t *testing.T) {
	var buf bytes.Buffer
	LoggingConfig{Level: "debug"}.Apply(&buf)
	t.Cleanup(func() { LoggingConfig{Level: "info"}.Apply(os.Stderr) })

	logger.Debugf("reloaded %s", "x.toml")
	if !strings.Contains(buf.String(), "reloaded x.toml") {
		t.Errorf("debug output missing: %q", buf.String())
	}

	buf.Reset()
	LoggingConfig{Level: "error"}.Apply(&buf)
	logger.Warnf("quiet")
	if buf.Len() != 0 {
		t.Errorf("warn logged at error level: %q", buf.String())
	}
}
