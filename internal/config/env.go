package config

import (
	"strconv"
	"strings"
)

// EnvPrefix starts the name of every environment override.
const EnvPrefix = "UIEVENTS_"

// envVar maps one environment variable onto a setting.
type envVar struct {
	name string
	path string
	set  func(c *Config, v string) error
}

var envVars = []envVar{
	{EnvPrefix + "SCALE_FACTOR", "pointer.scale_factor", func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		c.Pointer.ScaleFactor = f
		return err
	}},
	{EnvPrefix + "COLLECT_COALESCED", "pointer.collect_coalesced", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		c.Pointer.CollectCoalesced = b
		return err
	}},
	{EnvPrefix + "COLLECT_PREDICTED", "pointer.collect_predicted", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		c.Pointer.CollectPredicted = b
		return err
	}},
	{EnvPrefix + "LOG_LEVEL", "logging.level", func(c *Config, v string) error {
		c.Logging.Level = strings.ToLower(v)
		return nil
	}},
	{EnvPrefix + "BRIDGE_ADDR", "bridge.addr", func(c *Config, v string) error {
		c.Bridge.Addr = v
		return nil
	}},
}

// applyEnv applies every override that lookup finds. Empty values count
// as set.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, ev := range envVars {
		v, ok := lookup(ev.name)
		if !ok {
			continue
		}
		if err := ev.set(c, strings.TrimSpace(v)); err != nil {
			return &ValidationError{Path: ev.path, Message: "cannot parse " + ev.name, Value: v}
		}
	}
	return nil
}
