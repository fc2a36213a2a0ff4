package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkteam/uikit"
	"github.com/networkteam/uikit/internal/config"
	"github.com/networkteam/uikit/internal/logging"
	"github.com/networkteam/uikit/storybook"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr        string
	pathPrefix  string
	theme       string
	maxSessions int
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive storybook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootFlags)
			if err != nil {
				return err
			}
			applyServeFlags(cmd, opts, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&opts.pathPrefix, "path-prefix", "", "Mount the storybook below this path, e.g. /_storybook")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Default theme: light or dark")
	cmd.Flags().IntVar(&opts.maxSessions, "max-sessions", 0, "Maximum concurrent sessions, 0 for unlimited")

	return cmd
}

func applyServeFlags(cmd *cobra.Command, opts *serveOptions, cfg *config.Config) {
	if cmd.Flags().Changed("addr") {
		cfg.Addr = opts.addr
	}
	if cmd.Flags().Changed("path-prefix") {
		cfg.PathPrefix = opts.pathPrefix
	}
	if cmd.Flags().Changed("theme") {
		cfg.DefaultTheme = opts.theme
	}
	if cmd.Flags().Changed("max-sessions") {
		cfg.MaxSessions = opts.maxSessions
	}
}

func runServe(cmd *cobra.Command, cfg config.Config) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	handler, kit := newServerHandler(cfg, logger)
	defer kit.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting storybook", slog.String("addr", cfg.Addr), slog.String("pathPrefix", cfg.PathPrefix))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving storybook: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down storybook")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// newServerHandler mounts the storybook below the configured path prefix and logs requests.
func newServerHandler(cfg config.Config, logger *slog.Logger) (http.Handler, *uikit.Instance) {
	kit := uikit.NewWithOptions(uikit.Options{
		Title:              cfg.Title,
		DefaultTheme:       storybook.Theme(cfg.DefaultTheme),
		ActionCapacity:     cfg.Actions.Capacity,
		SessionIdleTimeout: cfg.Actions.SessionIdleTimeout,
		MaxSessions:        cfg.MaxSessions,
		Logger:             logger,
	})

	mux := http.NewServeMux()
	if cfg.PathPrefix == "" {
		mux.Handle("/", kit.StorybookHandler(""))
	} else {
		mux.Handle(cfg.PathPrefix+"/", http.StripPrefix(cfg.PathPrefix, kit.StorybookHandler(cfg.PathPrefix)))
		mux.Handle("GET /{$}", http.RedirectHandler(cfg.PathPrefix+"/", http.StatusFound))
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return logging.Middleware(logger, "/healthz")(mux), kit
}
