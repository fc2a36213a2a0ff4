package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/internal/config"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
title: Acme Buttons
addr: 127.0.0.1:8080
pathPrefix: /_storybook
defaultTheme: dark
maxSessions: 10
actions:
  capacity: 50
  sessionIdleTimeout: 5m
log:
  level: debug
  format: json
  file: storybook.log
`))
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Title:        "Acme Buttons",
		Addr:         "127.0.0.1:8080",
		PathPrefix:   "/_storybook",
		DefaultTheme: "dark",
		MaxSessions:  10,
		Actions: config.Actions{
			Capacity:           50,
			SessionIdleTimeout: 5 * time.Minute,
		},
		Log: config.Log{Level: "debug", Format: "json", File: "storybook.log"},
	}, cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("actions:\n  capacity: 10\n"))
	require.NoError(t, err)

	assert.Equal(t, uint64(10), cfg.Actions.Capacity)
	assert.Equal(t, 30*time.Minute, cfg.Actions.SessionIdleTimeout)
	assert.Equal(t, ":6006", cfg.Addr)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{"unknown theme", "defaultTheme: sepia\n", "DefaultTheme must be one of [light dark]"},
		{"prefix without slash", "pathPrefix: storybook\n", "PathPrefix"},
		{"prefix with trailing slash", "pathPrefix: /storybook/\n", "PathPrefix"},
		{"zero capacity", "actions:\n  capacity: 0\n", "Capacity must satisfy min=1"},
		{"short idle timeout", "actions:\n  sessionIdleTimeout: 10ms\n", "SessionIdleTimeout must satisfy min=1s"},
		{"unknown log format", "log:\n  format: xml\n", "Format must be one of [text json]"},
		{"empty addr", "addr: \"\"\n", "Addr is required"},
		{"malformed yaml", "title: [unterminated\n", "line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storybook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: From file\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From file", cfg.Title)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
