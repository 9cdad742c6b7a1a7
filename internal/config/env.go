// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is prepended to every configuration environment variable.
const EnvPrefix = "MSETCALC_"

// envOverride declares a single environment variable override. Each entry
// maps an env key (without the MSETCALC_ prefix) to a function that applies
// the env value to the configuration.
type envOverride struct {
	envKey string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides. The calculator has no tuning flags, so these apply on top of the
// built-in defaults whenever the variable is set.
var envOverrides = []envOverride{
	// Numeric overrides
	{"WORKERS", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"DIGITS", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Digits = parsed
		}
	}},
	{"MAX_PROFILES", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxProfiles = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// Boolean overrides
	{"EXACT", func(c *AppConfig, v string) {
		c.Exact = parseBoolEnv(v, c.Exact)
	}},
	{"QUIET", func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration.
// Priority: environment variables > defaults (positional arguments are never
// overridden).
//
// Supported environment variables (all prefixed with MSETCALC_):
//   - WORKERS, DIGITS, MAX_PROFILES, TIMEOUT, EXACT, QUIET
func applyEnvOverrides(config *AppConfig) {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
