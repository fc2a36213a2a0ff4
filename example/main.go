package main

import (
	"log/slog"
	"net/http"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/uikit"
)

func main() {
	// 1. Set up slog with a debug log file next to the console output

	logFile, err := os.OpenFile("example.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("Failed to open log file", slog.Any("err", err))
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(
		slogmulti.Fanout(
			// Keep storybook debug logs (activations, session cleanup) in the file
			slog.NewJSONHandler(logFile, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
			// Log info to stderr
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		),
	)
	slog.SetDefault(logger)

	kit := uikit.NewWithOptions(uikit.Options{
		Title:  "Example UI Kit",
		Logger: logger,
	})
	defer kit.Close()

	// 2. Use the button in application pages

	http.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if err := page().Render(r.Context(), w); err != nil {
			logger.Error("Failed to render page", slog.Any("err", err))
		}
	})

	// 3. Mount the storybook

	http.Handle("/_storybook/", http.StripPrefix("/_storybook", kit.StorybookHandler("/_storybook")))

	// Run the server

	logger.Info("Starting server on :1095")
	if err := http.ListenAndServe(":1095", nil); err != nil {
		logger.Error("Failed to start server", slog.Group("error", slog.String("message", err.Error())))
		os.Exit(1)
	}
}
