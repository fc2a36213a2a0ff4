//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorybookAccess(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		assert.Regexp(t, `/_storybook/s/[a-f0-9-]+/$`, f.Storybook.SessionURL)

		visible, err := f.Storybook.Page.Locator("#introduction").IsVisible()
		require.NoError(t, err)
		assert.True(t, visible, "introduction should be visible")

		count, err := f.Storybook.Page.Locator("#story-index li").Count()
		require.NoError(t, err)
		assert.Equal(t, 13, count)
	})
}

func TestSelectStoryFromSidebar(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Storybook.SelectStory("components-button--variants")

		count, err := f.Storybook.Page.Locator("#canvas button[data-variant]").Count()
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestClickRecordsAction(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Storybook.OpenStory("components-button--variants", "")
		f.Storybook.WaitForSSE()

		assert.Equal(t, "true", f.Storybook.ActivateAndWait("Danger"))
		assert.Equal(t, "true", f.Storybook.ActivateAndWait("Ghost"))

		// Actions appear via SSE without page reload
		f.Storybook.WaitForActionCount(2, 5000)
		assert.Equal(t, 2, f.Storybook.ActionCount())

		text, err := f.Storybook.Page.Locator("#actions li").First().TextContent()
		require.NoError(t, err)
		assert.Contains(t, text, "variant=ghost")
	})
}

func TestDisabledButtonIsNotActivated(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Storybook.OpenStory("components-button--playground", "disabled=true")

		button := f.Storybook.CanvasButton("Click me")
		disabled, err := button.IsDisabled()
		require.NoError(t, err)
		assert.True(t, disabled)

		ariaDisabled, err := button.GetAttribute("aria-disabled")
		require.NoError(t, err)
		assert.Equal(t, "true", ariaDisabled)

		// Browsers do not dispatch clicks on disabled buttons
		err = button.Click(playwright.LocatorClickOptions{Force: playwright.Bool(true)})
		require.NoError(t, err)

		_, err = f.Storybook.Page.Reload()
		require.NoError(t, err)
		assert.Equal(t, 0, f.Storybook.ActionCount())
	})
}

func TestAsChildLinkIsGatedWhenLoading(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		// A link cannot be disabled by the browser, the server side gate swallows the activation
		f.Storybook.OpenStory("components-button--as-child", "loading=true&label=Docs")

		link := f.Storybook.Page.Locator("#canvas a[data-variant='outline']")
		busy, err := link.GetAttribute("aria-busy")
		require.NoError(t, err)
		assert.Equal(t, "true", busy)

		spinners, err := link.Locator("[data-slot='spinner']").Count()
		require.NoError(t, err)
		assert.Equal(t, 1, spinners)

		assert.Equal(t, "false", f.Storybook.ActivateAndWait("Docs"))

		_, err = f.Storybook.Page.Reload()
		require.NoError(t, err)
		assert.Equal(t, 0, f.Storybook.ActionCount())
	})
}

func TestControlsChangeArgs(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Storybook.OpenStory("components-button--playground", "")

		f.Storybook.SetControl("variant", "danger")
		f.Storybook.SetControl("size", "lg")

		button := f.Storybook.CanvasButton("Click me")
		variant, err := button.GetAttribute("data-variant")
		require.NoError(t, err)
		assert.Equal(t, "danger", variant)
		size, err := button.GetAttribute("data-size")
		require.NoError(t, err)
		assert.Equal(t, "lg", size)

		f.Storybook.ToggleControl("loading")

		busy, err := f.Storybook.CanvasButton("Click me").GetAttribute("aria-busy")
		require.NoError(t, err)
		assert.Equal(t, "true", busy)
	})
}

func TestThemeSwitch(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Storybook.OpenStory("components-button--default", "")

		f.Storybook.SwitchTheme("dark")

		class, err := f.Storybook.Page.Locator("html").GetAttribute("class")
		require.NoError(t, err)
		assert.Equal(t, "dark", class)
		assert.Contains(t, f.Storybook.Page.URL(), "theme=dark")

		f.Storybook.SwitchTheme("light")

		class, err = f.Storybook.Page.Locator("html").GetAttribute("class")
		require.NoError(t, err)
		assert.Empty(t, class)
	})
}

func TestAppUsesButton(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		page, err := f.Ctx.NewPage()
		require.NoError(t, err)

		_, err = page.Goto(f.App.AppURL)
		require.NoError(t, err)

		count, err := page.Locator("button[type='button'][data-variant='danger']").Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		disabled, err := page.Locator("button", playwright.PageLocatorOptions{HasText: "Save"}).IsDisabled()
		require.NoError(t, err)
		assert.True(t, disabled)
	})
}
