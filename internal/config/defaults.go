package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.secretshare",
		Sharing: SharingConfig{
			DefaultThreshold: 3,
			DefaultShares:    5,
			SignByDefault:    true,
			MemoryLock:       true,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.secretshare/secretshare.log",
		},
	}
}
