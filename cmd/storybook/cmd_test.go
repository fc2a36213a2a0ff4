package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/internal/config"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	stdout, err := executeCommand("list")
	require.NoError(t, err)

	require.Contains(t, stdout, "Components/Button\n")
	require.Contains(t, stdout, "  Default (components-button--default) [controls]")
	require.Contains(t, stdout, "  StateMatrix (components-button--state-matrix)\n")
	require.Contains(t, stdout, "Welcome\n")
	// Buffer output is not a terminal, no escape sequences
	require.NotContains(t, stdout, "\x1b[")
}

func TestListCommand_JSON(t *testing.T) {
	stdout, err := executeCommand("list", "--json")
	require.NoError(t, err)

	var stories []listJSONStory
	require.NoError(t, json.Unmarshal([]byte(stdout), &stories))
	require.Len(t, stories, 13)
	assert.Equal(t, "welcome--introduction", stories[0].ID)
	assert.Equal(t, map[string]string{"variant": "primary", "size": "md"}, stories[1].Args)
}

func TestRenderCommand(t *testing.T) {
	stdout, err := executeCommand("render", "components-button--default", "--variant", "danger", "--size", "lg", "--label", "Delete")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<button "), stdout)
	assert.Contains(t, stdout, `data-variant="danger"`)
	assert.Contains(t, stdout, `data-size="lg"`)
	assert.Contains(t, stdout, ">Delete</button>")
}

func TestRenderCommand_StoryDefaults(t *testing.T) {
	stdout, err := executeCommand("render", "components-button--as-child", "--loading")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<a "), stdout)
	assert.Contains(t, stdout, `data-variant="outline"`)
	assert.Contains(t, stdout, `aria-busy="true"`)
	assert.Contains(t, stdout, "animate-spin")
}

func TestRenderCommand_Errors(t *testing.T) {
	_, err := executeCommand("render", "components-button--missing")
	assert.ErrorContains(t, err, "story not found")

	_, err = executeCommand("render", "components-button--default", "--variant", "link")
	assert.ErrorContains(t, err, "invalid story args")

	_, err = executeCommand("render")
	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")

	stdout, err := executeCommand("build", "--out", out, "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 27 files to "+out)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `<html class="dark"`)
}

func TestBuildCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "storybook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("title: Acme Buttons\ndefaultTheme: dark\n"), 0o644))
	out := filepath.Join(dir, "site")

	_, err := executeCommand("build", "--config", cfgPath, "--out", out)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Acme Buttons")
	assert.Contains(t, string(index), `<html class="dark"`)
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	_, err := executeCommand("serve", "--theme", "sepia")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = executeCommand("serve", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = executeCommand("serve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewServerHandler(t *testing.T) {
	cfg := config.Default()
	cfg.PathPrefix = "/_storybook"

	var logs bytes.Buffer
	handler, kit := newServerHandler(cfg, slog.New(slog.NewTextHandler(&logs, nil)))
	defer kit.Close()

	srv := httptest.NewServer(handler)
	defer srv.Close()

	client := srv.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/_storybook/", resp.Header.Get("Location"))

	resp, err = client.Get(srv.URL + "/_storybook/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(location, "/_storybook/s/"), location)

	resp, err = client.Get(srv.URL + location + "story/components-button--default")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `href="`+location+`story/components-button--variants?theme=light"`)

	resp, err = client.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, logs.String(), "path=/_storybook/")
	assert.NotContains(t, logs.String(), "path=/healthz")
}
