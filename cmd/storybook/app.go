package main

import (
	"io"
	"log/slog"

	"github.com/networkteam/uikit/internal/config"
	"github.com/networkteam/uikit/internal/logging"
)

// loadConfig reads the config file if one is given and applies root flag overrides.
func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(console io.Writer, cfg config.Config) (*slog.Logger, func() error, error) {
	return logging.New(console, logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
}
