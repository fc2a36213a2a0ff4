package storybook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gofrs/uuid"

	"github.com/networkteam/uikit/actions"
	"github.com/networkteam/uikit/storybook/views"
	"github.com/networkteam/uikit/ui"
)

// recentActions is the number of actions rendered with a page
const recentActions = 20

// ActionForwardedHeader tells whether an activation passed the interaction gate.
const ActionForwardedHeader = "X-Action-Forwarded"

type Handler struct {
	catalog  *Catalog
	sessions *SessionManager
	options  handlerOptions

	mux http.Handler
}

func NewHandler(catalog *Catalog, opts ...HandlerOption) *Handler {
	options := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	sessions := NewSessionManager(SessionManagerOptions{
		ActionCapacity: options.ActionCapacity,
		IdleTimeout:    options.SessionIdleTimeout,
		MaxSessions:    options.MaxSessions,
		Logger:         options.Logger,
	})

	mux := http.NewServeMux()
	handler := &Handler{
		catalog:  catalog,
		sessions: sessions,
		options:  options,
		mux:      mux,
	}

	mux.HandleFunc("GET /{$}", handler.root)
	mux.HandleFunc("GET /s/{sessionID}/{$}", handler.withSession(handler.getIndex))
	mux.HandleFunc("GET /s/{sessionID}/story/{storyID}", handler.withSession(handler.getStory))
	mux.HandleFunc("GET /s/{sessionID}/iframe/{storyID}", handler.withSession(handler.getCanvas))
	mux.HandleFunc("POST /s/{sessionID}/story/{storyID}/activate", handler.withSession(handler.postActivate))
	mux.HandleFunc("GET /s/{sessionID}/actions", handler.withSession(handler.getActions))
	mux.HandleFunc("GET /s/{sessionID}/actions-sse", handler.withSession(handler.getActionsSSE))

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Sessions exposes the session manager, mainly for tests and embedding applications.
func (h *Handler) Sessions() *SessionManager {
	return h.sessions
}

func (h *Handler) Close() {
	h.sessions.Close()
}

// root starts a new session
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.Must(uuid.NewV4())
	target := fmt.Sprintf("%s/s/%s/", h.options.PathPrefix, sessionID)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, log *actions.Log)

// withSession resolves session and theme and stores the view options in the request context.
func (h *Handler) withSession(next sessionHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := uuid.FromString(r.PathValue("sessionID"))
		if err != nil || sessionID == uuid.Nil {
			http.Error(w, "Invalid session id", http.StatusBadRequest)
			return
		}

		theme, err := ParseTheme(r.URL.Query().Get("theme"), h.options.DefaultTheme)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log, _, err := h.sessions.GetOrCreate(sessionID)
		if errors.Is(err, ErrMaxSessions) {
			http.Error(w, "Too many storybook sessions", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			h.options.Logger.Error("Failed to resolve session", slog.Any("err", err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		ctx := actions.WithSessionID(r.Context(), sessionID)
		ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{
			PathPrefix: h.options.PathPrefix,
			SessionID:  sessionID,
			Title:      h.options.Title,
			Theme:      string(theme),
		})

		next(w, r.WithContext(ctx), log)
	}
}

// logger returns the handler logger annotated with the session of the request, if any.
func (h *Handler) logger(ctx context.Context) *slog.Logger {
	if sessionID, ok := actions.SessionIDFromContext(ctx); ok {
		return h.options.Logger.With(slog.String("session", sessionID.String()))
	}
	return h.options.Logger
}

func (h *Handler) sidebar(current string) views.SidebarProps {
	return views.SidebarProps{
		Stories: h.catalog.entries(),
		Current: current,
	}
}

func (h *Handler) getIndex(w http.ResponseWriter, r *http.Request, _ *actions.Log) {
	var intro templ.Component
	if story, err := h.catalog.Get(IntroductionStory().ID()); err == nil {
		intro = story.Render(story.Args)
	}

	templ.Handler(views.IndexPage(views.IndexPageProps{
		Sidebar: h.sidebar(""),
		Intro:   intro,
	})).ServeHTTP(w, r)
}

// resolveStory looks up the story of the request and its args. It writes an error response on failure.
func (h *Handler) resolveStory(w http.ResponseWriter, r *http.Request) (Story, Args, bool) {
	story, err := h.catalog.Get(r.PathValue("storyID"))
	if err != nil {
		http.Error(w, "Story not found", http.StatusNotFound)
		return Story{}, Args{}, false
	}

	args := story.Args
	if story.Controls {
		args, err = ParseArgs(story.Args, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return Story{}, Args{}, false
		}
	}

	return story, args, true
}

func (h *Handler) getStory(w http.ResponseWriter, r *http.Request, log *actions.Log) {
	story, args, ok := h.resolveStory(w, r)
	if !ok {
		return
	}

	props := views.DocsPageProps{
		Sidebar: h.sidebar(story.ID()),
		Story:   story.entry(),
		Canvas:  story.Render(args),
		Layout:  story.Layout,
		Source:  story.Source,
		Actions: log.Recent(recentActions),
	}
	if story.Controls {
		props.Controls = args.controls()
	}

	templ.Handler(views.DocsPage(props), templ.WithErrorHandler(h.renderErrorHandler)).ServeHTTP(w, r)
}

func (h *Handler) getCanvas(w http.ResponseWriter, r *http.Request, _ *actions.Log) {
	story, args, ok := h.resolveStory(w, r)
	if !ok {
		return
	}

	templ.Handler(views.CanvasPage(story.entry(), story.Layout, story.Render(args)), templ.WithErrorHandler(h.renderErrorHandler)).ServeHTTP(w, r)
}

// postActivate runs an activation of a story button through the interaction gate.
// Forwarded activations are recorded in the session's action log, gated ones are dropped.
func (h *Handler) postActivate(w http.ResponseWriter, r *http.Request, log *actions.Log) {
	story, err := h.catalog.Get(r.PathValue("storyID"))
	if err != nil {
		http.Error(w, "Story not found", http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	args, err := ParseArgs(Args{}, r.PostForm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props, err := args.Props()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	spec, err := ui.Present(props)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action := actions.NewAction(log.SessionID(), story.ID(), "click", args.Values())
	forwarded := ui.Forward(spec, action, log.Record)

	h.logger(r.Context()).Debug("Button activated",
		slog.String("story", story.ID()),
		slog.Bool("forwarded", forwarded),
	)

	w.Header().Set(ActionForwardedHeader, strconv.FormatBool(forwarded))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getActions(w http.ResponseWriter, r *http.Request, log *actions.Log) {
	templ.Handler(views.ActionList(log.Recent(recentActions))).ServeHTTP(w, r)
}

// getActionsSSE streams newly recorded actions as rendered list items
func (h *Handler) getActionsSSE(w http.ResponseWriter, r *http.Request, log *actions.Log) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // For NGINX proxy

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	actionCh := log.Subscribe(ctx)
	h.logger(ctx).Debug("Actions stream connected")

	fmt.Fprintf(w, "event: keepalive\ndata: connected\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(max(h.sessions.IdleTimeout()/3, time.Second))
	defer keepalive.Stop()

	var buf bytes.Buffer
	for {
		select {
		case <-ctx.Done():
			return
		case <-keepalive.C:
			h.sessions.UpdateActivity(log.SessionID())
			fmt.Fprintf(w, ": keepalive\n\n")
			flusher.Flush()
		case action, ok := <-actionCh:
			if !ok {
				return
			}

			buf.Reset()
			if err := views.ActionItem(action).Render(ctx, &buf); err != nil {
				h.logger(ctx).Error("Failed to render action", slog.Any("err", err))
				continue
			}
			data := strings.ReplaceAll(buf.String(), "\n", " ")

			fmt.Fprintf(w, "event: new-action\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

func (h *Handler) renderErrorHandler(r *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger(r.Context()).Error("Failed to render story", slog.String("path", r.URL.Path), slog.Any("err", err))
		status := http.StatusInternalServerError
		if errors.Is(err, ui.ErrInvalidVariant) || errors.Is(err, ui.ErrInvalidSize) || errors.Is(err, ui.ErrAsChildContent) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
	})
}
