package uikit

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/networkteam/uikit/storybook"
)

type Instance struct {
	catalog *storybook.Catalog
	options Options

	mu       sync.Mutex
	handlers []*storybook.Handler
}

func (i *Instance) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, h := range i.handlers {
		h.Close()
	}
	i.handlers = nil
}

type Options struct {
	// Catalog holds the stories to document.
	// Default: nil, will use storybook.DefaultCatalog()
	Catalog *storybook.Catalog

	// Title is shown in the sidebar and page titles.
	// Default: "", will use storybook.DefaultTitle
	Title string
	// DefaultTheme is used when a request selects no theme.
	// Default: "", will use light
	DefaultTheme storybook.Theme

	// ActionCapacity is the maximum number of recorded actions per session.
	// Default: 0, will use storybook.DefaultActionCapacity
	ActionCapacity uint64
	// SessionIdleTimeout is the duration after which idle sessions and their actions are dropped.
	// Default: 0, will use storybook.DefaultSessionIdleTimeout
	SessionIdleTimeout time.Duration
	// MaxSessions limits concurrent sessions.
	// Default: 0, unlimited
	MaxSessions int

	// Logger receives storybook logs.
	// Default: nil, will use slog.Default()
	Logger *slog.Logger
}

// New creates a storybook instance for the default catalog with default options.
func New() *Instance {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a storybook instance with the specified options.
// Default options are the zero value of Options.
func NewWithOptions(options Options) *Instance {
	catalog := options.Catalog
	if catalog == nil {
		catalog = storybook.DefaultCatalog()
	}
	return &Instance{
		catalog: catalog,
		options: options,
	}
}

func (i *Instance) Catalog() *storybook.Catalog {
	return i.catalog
}

// StorybookHandler returns the storybook UI. It expects to be mounted below pathPrefix with the prefix stripped:
//
//	mux.Handle("/_storybook/", http.StripPrefix("/_storybook", ui.StorybookHandler("/_storybook")))
func (i *Instance) StorybookHandler(pathPrefix string) http.Handler {
	opts := []storybook.HandlerOption{storybook.WithPathPrefix(pathPrefix)}
	if i.options.Title != "" {
		opts = append(opts, storybook.WithTitle(i.options.Title))
	}
	if i.options.DefaultTheme != "" {
		opts = append(opts, storybook.WithDefaultTheme(i.options.DefaultTheme))
	}
	if i.options.ActionCapacity > 0 {
		opts = append(opts, storybook.WithActionCapacity(i.options.ActionCapacity))
	}
	if i.options.SessionIdleTimeout > 0 {
		opts = append(opts, storybook.WithSessionIdleTimeout(i.options.SessionIdleTimeout))
	}
	if i.options.MaxSessions > 0 {
		opts = append(opts, storybook.WithMaxSessions(i.options.MaxSessions))
	}
	if i.options.Logger != nil {
		opts = append(opts, storybook.WithLogger(i.options.Logger))
	}

	handler := storybook.NewHandler(i.catalog, opts...)

	i.mu.Lock()
	i.handlers = append(i.handlers, handler)
	i.mu.Unlock()

	return handler
}
