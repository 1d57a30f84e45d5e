package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "SECRETSHARE_HOME"
	EnvThreshold    = "SECRETSHARE_THRESHOLD"
	EnvShares       = "SECRETSHARE_SHARES"
	EnvSign         = "SECRETSHARE_SIGN"
	EnvOutputFormat = "SECRETSHARE_OUTPUT_FORMAT"
	EnvVerbose      = "SECRETSHARE_VERBOSE"
	EnvLogLevel     = "SECRETSHARE_LOG_LEVEL"
	EnvNoColor      = "NO_COLOR"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvThreshold); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sharing.DefaultThreshold = n
		}
	}

	if v := os.Getenv(EnvShares); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sharing.DefaultShares = n
		}
	}

	if v := os.Getenv(EnvSign); v != "" {
		cfg.Sharing.SignByDefault = parseBool(v)
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
