package storybook

import (
	"log/slog"
	"time"
)

const (
	// DefaultActionCapacity is the number of actions kept per session.
	DefaultActionCapacity = 100
	// DefaultSessionIdleTimeout is how long a session without requests is kept.
	DefaultSessionIdleTimeout = 30 * time.Minute
	DefaultTitle              = "UI Kit Storybook"
)

// handlerOptions holds configuration for a storybook Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/_storybook").
	PathPrefix string
	Title      string
	// DefaultTheme applies when a request does not select a theme.
	DefaultTheme Theme
	// ActionCapacity is the number of actions kept per session.
	ActionCapacity uint64
	// SessionIdleTimeout is how long a session without requests is kept.
	SessionIdleTimeout time.Duration
	// MaxSessions is the maximum number of concurrent sessions (0 = unlimited).
	MaxSessions int
	Logger      *slog.Logger
}

// HandlerOption configures a storybook Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// This is used for generating correct URLs in the storybook.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithTitle sets the title shown in the sidebar.
func WithTitle(title string) HandlerOption {
	return func(o *handlerOptions) {
		o.Title = title
	}
}

// WithDefaultTheme sets the theme used when a request does not select one.
// Default is ThemeLight.
func WithDefaultTheme(theme Theme) HandlerOption {
	return func(o *handlerOptions) {
		o.DefaultTheme = theme
	}
}

// WithActionCapacity sets the number of actions kept per session.
// Default is DefaultActionCapacity if not specified.
func WithActionCapacity(capacity uint64) HandlerOption {
	return func(o *handlerOptions) {
		o.ActionCapacity = capacity
	}
}

// WithSessionIdleTimeout sets how long a session without requests is kept.
// Default is DefaultSessionIdleTimeout if not specified.
func WithSessionIdleTimeout(timeout time.Duration) HandlerOption {
	return func(o *handlerOptions) {
		o.SessionIdleTimeout = timeout
	}
}

// WithMaxSessions sets the maximum number of concurrent sessions.
// Default is 0 (unlimited).
func WithMaxSessions(limit int) HandlerOption {
	return func(o *handlerOptions) {
		o.MaxSessions = limit
	}
}

// WithLogger sets the logger for request errors and session lifecycle.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = logger
	}
}

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		Title:              DefaultTitle,
		DefaultTheme:       ThemeLight,
		ActionCapacity:     DefaultActionCapacity,
		SessionIdleTimeout: DefaultSessionIdleTimeout,
		Logger:             slog.Default(),
	}
}
