package storybook

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/storybook/views"
)

// BuildOptions configures a static export.
type BuildOptions struct {
	Title string
	Theme Theme
}

// Build writes a static version of the catalog to dir: index.html and for every story
// a docs page "<id>.html" and a canvas page "<id>.canvas.html".
// Controls and the actions panel are omitted since they need a running server.
// It returns the written file names relative to dir.
func Build(ctx context.Context, catalog *Catalog, dir string, opts BuildOptions) ([]string, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Theme == "" {
		opts.Theme = ThemeLight
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{
		Title: opts.Title,
		Theme: string(opts.Theme),
	})

	sidebar := func(current string) views.SidebarProps {
		return views.SidebarProps{Stories: catalog.entries(), Current: current}
	}

	var written []string
	write := func(name string, c templ.Component) error {
		var buf bytes.Buffer
		if err := c.Render(ctx, &buf); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	}

	var intro templ.Component
	if story, err := catalog.Get(IntroductionStory().ID()); err == nil {
		intro = story.Render(story.Args)
	}
	if err := write("index.html", views.IndexPage(views.IndexPageProps{Sidebar: sidebar(""), Intro: intro})); err != nil {
		return written, err
	}

	for _, story := range catalog.Stories() {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		id := story.ID()
		docs := views.DocsPage(views.DocsPageProps{
			Sidebar: sidebar(id),
			Story:   story.entry(),
			Canvas:  story.Render(story.Args),
			Layout:  story.Layout,
			Source:  story.Source,
		})
		if err := write(id+".html", docs); err != nil {
			return written, err
		}
		if err := write(id+".canvas.html", views.CanvasPage(story.entry(), story.Layout, story.Render(story.Args))); err != nil {
			return written, err
		}
	}

	return written, nil
}

// RenderStory renders the canvas of a single story with args to a string.
func RenderStory(ctx context.Context, catalog *Catalog, storyID string, args Args, theme Theme) (string, error) {
	story, err := catalog.Get(storyID)
	if err != nil {
		return "", err
	}

	ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{Title: DefaultTitle, Theme: string(theme)})

	var buf bytes.Buffer
	if err := story.Render(args).Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
