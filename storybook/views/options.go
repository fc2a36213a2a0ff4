package views

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gofrs/uuid"
)

type HandlerOptions struct {
	// PathPrefix where the storybook is mounted, empty for "/".
	PathPrefix string
	// SessionID of the current browser session, uuid.Nil for a static build.
	SessionID uuid.UUID
	Title     string
	Theme     string
}

type handlerOptionsKeyType struct{}

var handlerOptionsKey = handlerOptionsKeyType{}

func WithHandlerOptions(ctx context.Context, opts HandlerOptions) context.Context {
	return context.WithValue(ctx, handlerOptionsKey, opts)
}

func MustGetHandlerOptions(ctx context.Context) HandlerOptions {
	opts, ok := ctx.Value(handlerOptionsKey).(HandlerOptions)
	if !ok {
		panic("missing handler options in context")
	}
	return opts
}

func (o HandlerOptions) static() bool {
	return o.SessionID == uuid.Nil
}

func (o HandlerOptions) sessionPath(path string) string {
	return fmt.Sprintf("%s/s/%s%s", o.PathPrefix, o.SessionID, path)
}

// storyURL links to the docs page of a story, keeping the theme.
func (o HandlerOptions) storyURL(storyID string, query url.Values) string {
	if o.static() {
		return url.PathEscape(storyID) + ".html"
	}
	return withQuery(o.sessionPath("/story/"+url.PathEscape(storyID)), o.themed(query))
}

func (o HandlerOptions) iframeURL(storyID string, query url.Values) string {
	if o.static() {
		return url.PathEscape(storyID) + ".canvas.html"
	}
	return withQuery(o.sessionPath("/iframe/"+url.PathEscape(storyID)), o.themed(query))
}

func (o HandlerOptions) indexURL() string {
	if o.static() {
		return "index.html"
	}
	return withQuery(o.sessionPath("/"), o.themed(nil))
}

func (o HandlerOptions) activateURL(storyID string) string {
	return o.sessionPath("/story/" + url.PathEscape(storyID) + "/activate")
}

func (o HandlerOptions) actionsSSEURL() string {
	return o.sessionPath("/actions-sse")
}

func (o HandlerOptions) themed(query url.Values) url.Values {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	if o.Theme != "" {
		q.Set("theme", o.Theme)
	}
	return q
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
