// Package config resolves pfx CLI settings from the environment.
//
// Every setting has a default and can be overridden with an environment
// variable; command-line flags take precedence over both.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rhaeguard/pfx"
)

const (
	EnvMode     = "PFX_MODE"
	EnvLogLevel = "PFX_LOG_LEVEL"
	EnvLogFile  = "PFX_LOG_FILE"
)

// Config contains the settings shared by all pfx commands.
type Config struct {
	// Mode is the conversion mode (default: strict)
	Mode pfx.Mode

	// LogLevel is the minimum level written to the log (default: warn)
	LogLevel logrus.Level

	// LogFile is a rotated log file; empty means stderr
	LogFile string
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Mode:     pfx.Strict,
		LogLevel: logrus.WarnLevel,
	}
}

// Load returns the default configuration with environment overrides applied:
// - PFX_MODE: strict or lenient
// - PFX_LOG_LEVEL: any logrus level name
// - PFX_LOG_FILE: path of the log file
func Load() (*Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvMode); v != "" {
		mode, err := ParseMode(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvMode, err)
		}
		cfg.Mode = mode
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	cfg.LogFile = os.Getenv(EnvLogFile)

	return cfg, nil
}

// ParseMode converts a mode name into a pfx.Mode.
func ParseMode(s string) (pfx.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return pfx.Strict, nil
	case "lenient":
		return pfx.Lenient, nil
	}
	return pfx.Strict, fmt.Errorf("unknown mode %q (want strict or lenient)", s)
}
