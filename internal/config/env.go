package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel    = "GRIDEDIT_LOG_LEVEL"
	EnvMaxEntries  = "GRIDEDIT_MAX_ENTRIES"
	EnvLayout      = "GRIDEDIT_LAYOUT"
	EnvLayoutWatch = "GRIDEDIT_LAYOUT_WATCH"
)

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from GRIDEDIT_* variables in the process
// environment.
func (c *Config) ApplyEnv() error {
	return c.ApplyEnvFrom(os.LookupEnv)
}

// ApplyEnvFrom overrides settings from variables found by lookup.
// Empty values are treated as set.
func (c *Config) ApplyEnvFrom(lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLayout); ok {
		c.Layout.Path = v
	}
	if v, ok := lookup(EnvMaxEntries); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxEntries, err)
		}
		c.History.MaxEntries = n
	}
	if v, ok := lookup(EnvLayoutWatch); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLayoutWatch, err)
		}
		c.Layout.Watch = b
	}
	return nil
}
