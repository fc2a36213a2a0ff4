//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit"
	"github.com/networkteam/uikit/internal/logging"
	"github.com/networkteam/uikit/ui"
)

// TestApp is an application page using the button next to a mounted storybook.
type TestApp struct {
	Server       *httptest.Server
	StorybookURL string
	AppURL       string
	Kit          *uikit.Instance
}

func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	kit := uikit.NewWithOptions(uikit.Options{
		ActionCapacity: 50,
		Logger:         logger,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = templ.Join(
			ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantDanger}, ui.Text("Delete")),
			ui.Button(ui.ButtonProps{Disabled: true}, ui.Text("Save")),
		).Render(r.Context(), w)
	})
	mux.Handle("/_storybook/", http.StripPrefix("/_storybook", kit.StorybookHandler("/_storybook")))

	server := httptest.NewServer(logging.Middleware(logger)(mux))

	return &TestApp{
		Server:       server,
		StorybookURL: server.URL + "/_storybook/",
		AppURL:       server.URL,
		Kit:          kit,
	}
}

func (ta *TestApp) Close() {
	ta.Server.Close()
	ta.Kit.Close()
}
