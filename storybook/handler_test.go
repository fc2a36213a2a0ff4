package storybook_test

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/actions"
	"github.com/networkteam/uikit/storybook"
)

func newTestHandler(t *testing.T, opts ...storybook.HandlerOption) *storybook.Handler {
	t.Helper()
	h := storybook.NewHandler(storybook.DefaultCatalog(), opts...)
	t.Cleanup(h.Close)
	return h
}

func serve(h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionPath(sessionID uuid.UUID, suffix string) string {
	return "/s/" + sessionID.String() + suffix
}

func TestHandler_RootRedirectsToNewSession(t *testing.T) {
	h := newTestHandler(t, storybook.WithPathPrefix("/_storybook"))

	rec := serve(h, http.MethodGet, "/?theme=dark", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/_storybook/s/"), location)
	assert.True(t, strings.HasSuffix(location, "/?theme=dark"), location)

	sid := strings.TrimSuffix(strings.TrimPrefix(location, "/_storybook/s/"), "/?theme=dark")
	_, err := uuid.FromString(sid)
	assert.NoError(t, err)
}

func TestHandler_Index(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodGet, sessionPath(sid, "/"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="sidebar"`)
	assert.Contains(t, body, `id="introduction"`)
	assert.Contains(t, body, `id="story-index"`)
	assert.Contains(t, body, "components-button--state-matrix")
	assert.Equal(t, 1, h.Sessions().Len())
}

func TestHandler_StoryPage(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodGet, sessionPath(sid, "/story/components-button--default?variant=danger&size=lg&label=Delete"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="canvas"`)
	assert.Contains(t, body, `id="controls"`)
	assert.Contains(t, body, `id="actions"`)
	assert.Contains(t, body, `data-variant="danger"`)
	assert.Contains(t, body, `data-size="lg"`)
	assert.Contains(t, body, "bg-red-600")
	assert.Contains(t, body, ">Delete</button>")
	assert.Contains(t, body, "/story/components-button--default/activate")
}

func TestHandler_StoryPageDarkTheme(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodGet, sessionPath(sid, "/story/components-button--variants?theme=dark"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<html class="dark"`)
	assert.Contains(t, rec.Body.String(), `data-theme="dark"`)
}

func TestHandler_Canvas(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodGet, sessionPath(sid, "/iframe/components-button--as-child"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="canvas"`)
	assert.NotContains(t, body, `id="sidebar"`)
	assert.Contains(t, body, `data-variant="outline"`)
	assert.NotContains(t, body, "<button")
}

func TestHandler_Errors(t *testing.T) {
	sid := uuid.Must(uuid.NewV4())

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"unknown story", sessionPath(sid, "/story/components-button--missing"), http.StatusNotFound},
		{"unknown variant", sessionPath(sid, "/story/components-button--default?variant=link"), http.StatusBadRequest},
		{"malformed bool", sessionPath(sid, "/story/components-button--playground?disabled=maybe"), http.StatusBadRequest},
		{"unknown theme", sessionPath(sid, "/story/components-button--default?theme=sepia"), http.StatusBadRequest},
		{"invalid session", "/s/not-a-uuid/", http.StatusBadRequest},
		{"nil session", sessionPath(uuid.Nil, "/"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			rec := serve(h, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_ArgsIgnoredWithoutControls(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodGet, sessionPath(sid, "/story/components-button--sizes?variant=link"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Activate(t *testing.T) {
	tests := []struct {
		name          string
		form          url.Values
		wantForwarded string
		wantRecorded  uint64
	}{
		{"enabled", url.Values{"variant": {"primary"}}, "true", 1},
		{"disabled", url.Values{"disabled": {"true"}}, "false", 0},
		{"loading", url.Values{"loading": {"true"}}, "false", 0},
		{"disabled and loading", url.Values{"disabled": {"true"}, "loading": {"true"}}, "false", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			sid := uuid.Must(uuid.NewV4())

			rec := serve(h, http.MethodPost, sessionPath(sid, "/story/components-button--playground/activate"), tt.form)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.wantForwarded, rec.Header().Get(storybook.ActionForwardedHeader))

			log := h.Sessions().Get(sid)
			require.NotNil(t, log)
			assert.Equal(t, tt.wantRecorded, log.Len())
		})
	}
}

func TestHandler_ActivateRecordsAction(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodPost, sessionPath(sid, "/story/components-button--variants/activate"), url.Values{"variant": {"ghost"}})
	require.Equal(t, http.StatusNoContent, rec.Code)

	recent := h.Sessions().Get(sid).Recent(1)
	require.Len(t, recent, 1)
	action := recent[0]
	assert.Equal(t, sid, action.SessionID)
	assert.Equal(t, "components-button--variants", action.StoryID)
	assert.Equal(t, "click", action.Name)
	assert.Equal(t, map[string]string{"variant": "ghost"}, action.Args)

	rec = serve(h, http.MethodGet, sessionPath(sid, "/actions"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-action-id="`+action.ID.String()+`"`)
}

func TestHandler_ActivateNotifiesSubscribers(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	log, _, err := h.Sessions().GetOrCreate(sid)
	require.NoError(t, err)
	collected := actions.CollectActions(t, log)

	rec := serve(h, http.MethodPost, sessionPath(sid, "/story/components-button--sizes/activate"), url.Values{"size": {"lg"}})
	require.Equal(t, http.StatusNoContent, rec.Code)

	action := collected.WaitForStory("components-button--sizes")
	assert.Equal(t, sid, action.SessionID)
	assert.Equal(t, map[string]string{"size": "lg"}, action.Args)
}

func TestHandler_ActivateLogsSession(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := newTestHandler(t, storybook.WithLogger(logger))
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodPost, sessionPath(sid, "/story/components-button--default/activate"), url.Values{"disabled": {"true"}})
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Contains(t, logs.String(), `msg="Button activated" session=`+sid.String())
	assert.Contains(t, logs.String(), "forwarded=false")
}

func TestHandler_ActivateRejectsInvalidArgs(t *testing.T) {
	h := newTestHandler(t)
	sid := uuid.Must(uuid.NewV4())

	rec := serve(h, http.MethodPost, sessionPath(sid, "/story/components-button--default/activate"), url.Values{"variant": {"link"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, uint64(0), h.Sessions().Get(sid).Len())

	rec = serve(h, http.MethodPost, sessionPath(sid, "/story/components-button--missing/activate"), url.Values{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SessionIdleTimeoutBounds(t *testing.T) {
	h := newTestHandler(t, storybook.WithSessionIdleTimeout(time.Nanosecond))
	assert.Equal(t, time.Nanosecond, h.Sessions().IdleTimeout())

	rec := serve(h, http.MethodGet, sessionPath(uuid.Must(uuid.NewV4()), "/"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	h = newTestHandler(t, storybook.WithSessionIdleTimeout(-time.Minute))
	assert.Equal(t, storybook.DefaultSessionIdleTimeout, h.Sessions().IdleTimeout())
}

func TestHandler_MaxSessions(t *testing.T) {
	h := newTestHandler(t, storybook.WithMaxSessions(1))

	rec := serve(h, http.MethodGet, sessionPath(uuid.Must(uuid.NewV4()), "/"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, sessionPath(uuid.Must(uuid.NewV4()), "/"), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_ActionsSSE(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	sid := uuid.Must(uuid.NewV4())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+sessionPath(sid, "/actions-sse"), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (event, data string) {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case line == "" && event != "":
				return event, data
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			}
		}
	}

	event, _ := readEvent()
	require.Equal(t, "keepalive", event)

	form := url.Values{"variant": {"danger"}}
	postResp, err := http.PostForm(srv.URL+sessionPath(sid, "/story/components-button--default/activate"), form)
	require.NoError(t, err)
	postResp.Body.Close()
	require.Equal(t, "true", postResp.Header.Get(storybook.ActionForwardedHeader))

	event, data := readEvent()
	assert.Equal(t, "new-action", event)
	assert.Contains(t, data, "components-button--default")
	assert.Contains(t, data, "variant=danger")
	assert.True(t, strings.HasPrefix(data, "<li "), data)
}
