package logging_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := logging.New(&buf, logging.Options{Level: "warn"})
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", slog.String("story", "components-button--default"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "story=components-button--default")
}

func TestNew_FanoutToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "storybook.log")

	logger, closeFn, err := logging.New(&buf, logging.Options{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug("debug only in file")
	logger.Info("everywhere")
	require.NoError(t, closeFn())

	assert.NotContains(t, buf.String(), "debug only in file")
	assert.Contains(t, buf.String(), `"msg":"everywhere"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"debug only in file"`)
	assert.Contains(t, string(data), `"msg":"everywhere"`)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, _, err := logging.New(&bytes.Buffer{}, logging.Options{Format: "xml"})
	assert.Error(t, err)

	_, _, err = logging.New(&bytes.Buffer{}, logging.Options{Level: "loud"})
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := logging.Middleware(logger, "/static/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, isFlusher := w.(http.Flusher)
		assert.True(t, isFlusher)
		if r.URL.Path == "/missing" {
			http.Error(w, "nope", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))
	assert.Equal(t, "hello", rec.Body.String())
	assert.Contains(t, buf.String(), "path=/hello")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "size=5")

	buf.Reset()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Contains(t, buf.String(), "status=404")

	buf.Reset()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	assert.Empty(t, buf.String())
}
