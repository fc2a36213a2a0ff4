package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/networkteam/uikit/internal/validation"
)

var ErrInvalidConfig = errors.New("invalid config")

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Config is the storybook server configuration, usually read from storybook.yaml.
type Config struct {
	Title        string  `yaml:"title" validate:"max=100"`
	Addr         string  `yaml:"addr" validate:"required"`
	PathPrefix   string  `yaml:"pathPrefix" validate:"omitempty,startswith=/,endsnotwith=/"`
	DefaultTheme string  `yaml:"defaultTheme" validate:"oneof=light dark"`
	MaxSessions  int     `yaml:"maxSessions" validate:"min=0"`
	Actions      Actions `yaml:"actions"`
	Log          Log     `yaml:"log"`
}

type Actions struct {
	// Capacity is the number of actions kept per session.
	Capacity           uint64        `yaml:"capacity" validate:"min=1,max=10000"`
	SessionIdleTimeout time.Duration `yaml:"sessionIdleTimeout" validate:"min=1s"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	// File additionally writes JSON logs to this path if set.
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Title:        "UI Kit Storybook",
		Addr:         ":6006",
		DefaultTheme: "light",
		Actions: Actions{
			Capacity:           100,
			SessionIdleTimeout: 30 * time.Minute,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads and validates the config file at path. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if line := extractLine(err); line > 0 {
			return Config{}, fmt.Errorf("%w: line %d: %v", ErrInvalidConfig, line, err)
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
