package storybook_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/storybook"
)

func TestBuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	catalog := storybook.DefaultCatalog()

	written, err := storybook.Build(context.Background(), catalog, dir, storybook.BuildOptions{Theme: storybook.ThemeDark})
	require.NoError(t, err)

	assert.Len(t, written, 1+2*len(catalog.Stories()))
	assert.Equal(t, "index.html", written[0])

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="components-button--default.html"`)
	assert.Contains(t, string(index), `<html class="dark"`)
	assert.NotContains(t, string(index), "data-activate-url")

	docs, err := os.ReadFile(filepath.Join(dir, "components-button--button-group.html"))
	require.NoError(t, err)
	assert.Contains(t, string(docs), `id="canvas"`)
	assert.Contains(t, string(docs), `id="source"`)
	assert.NotContains(t, string(docs), `id="actions"`)
	assert.NotContains(t, string(docs), `id="controls"`)

	_, err = os.Stat(filepath.Join(dir, "components-button--button-group.canvas.html"))
	assert.NoError(t, err)
}

func TestBuild_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := storybook.Build(ctx, storybook.DefaultCatalog(), t.TempDir(), storybook.BuildOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"index.html"}, written)
}

func TestRenderStory(t *testing.T) {
	catalog := storybook.DefaultCatalog()

	html, err := storybook.RenderStory(context.Background(), catalog, "components-button--playground",
		storybook.Args{Variant: "secondary", Size: "sm", Loading: true, Label: "Saving"}, storybook.ThemeLight)
	require.NoError(t, err)
	assert.Contains(t, html, `data-variant="secondary"`)
	assert.Contains(t, html, `data-size="sm"`)
	assert.Contains(t, html, `aria-busy="true"`)
	assert.Contains(t, html, "animate-spin")
	assert.Contains(t, html, "Saving</button>")

	_, err = storybook.RenderStory(context.Background(), catalog, "nope--nope", storybook.Args{}, storybook.ThemeLight)
	assert.ErrorIs(t, err, storybook.ErrStoryNotFound)

	_, err = storybook.RenderStory(context.Background(), catalog, "components-button--playground", storybook.Args{Variant: "pink"}, storybook.ThemeLight)
	assert.Error(t, err)
}
