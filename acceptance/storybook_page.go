//go:build acceptance
// +build acceptance

package acceptance

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// StorybookPage is the page object of the storybook UI.
type StorybookPage struct {
	Page         playwright.Page
	StorybookURL string
	SessionURL   string
	t            *testing.T
}

// NewStorybookPage opens the storybook and waits for the redirect into a session.
func NewStorybookPage(t *testing.T, ctx playwright.BrowserContext, storybookURL string) *StorybookPage {
	t.Helper()

	page, err := ctx.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(storybookURL)
	require.NoError(t, err)

	err = page.WaitForURL("**/_storybook/s/*/", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	})
	require.NoError(t, err, "failed to redirect to session URL")

	return &StorybookPage{
		Page:         page,
		StorybookURL: storybookURL,
		SessionURL:   page.URL(),
		t:            t,
	}
}

// OpenStory navigates to the docs page of a story. query is appended as is, e.g. "variant=danger".
func (sp *StorybookPage) OpenStory(storyID, query string) {
	sp.t.Helper()

	target := strings.TrimSuffix(sp.SessionURL, "/") + "/story/" + storyID
	if query != "" {
		target += "?" + query
	}
	_, err := sp.Page.Goto(target)
	require.NoError(sp.t, err)

	err = sp.Page.Locator("#canvas").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(sp.t, err, "canvas not visible")
}

// SelectStory clicks a story link in the sidebar.
func (sp *StorybookPage) SelectStory(storyID string) {
	sp.t.Helper()

	err := sp.Page.Locator("#sidebar a[data-story-id='" + storyID + "']").Click()
	require.NoError(sp.t, err)

	err = sp.Page.Locator("#canvas[data-story-id='" + storyID + "']").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	require.NoError(sp.t, err, "story did not load")
}

// CanvasButton locates an element in the canvas by its text.
func (sp *StorybookPage) CanvasButton(text string) playwright.Locator {
	return sp.Page.Locator("#canvas [data-variant]", playwright.PageLocatorOptions{HasText: text}).First()
}

// ActivateAndWait clicks a canvas element and waits for the activation response.
// It returns the value of the X-Action-Forwarded header.
func (sp *StorybookPage) ActivateAndWait(text string) string {
	sp.t.Helper()

	resp, err := sp.Page.ExpectResponse("**/activate", func() error {
		return sp.CanvasButton(text).Click()
	}, playwright.PageExpectResponseOptions{Timeout: playwright.Float(5000)})
	require.NoError(sp.t, err, "no activation request")

	forwarded, err := resp.HeaderValue("x-action-forwarded")
	require.NoError(sp.t, err)
	return forwarded
}

// WaitForSSE waits until the actions panel is connected to the event stream.
func (sp *StorybookPage) WaitForSSE() {
	sp.t.Helper()

	// The client script does not expose the EventSource, a fresh one tells whether the endpoint is reachable.
	_, err := sp.Page.WaitForFunction(`() => new Promise((resolve) => {
		const panel = document.getElementById('actions');
		const source = new EventSource(panel.dataset.sseUrl);
		source.addEventListener('keepalive', () => { source.close(); resolve(true); }, { once: true });
	})`, nil, playwright.PageWaitForFunctionOptions{Timeout: playwright.Float(5000)})
	require.NoError(sp.t, err, "failed to connect to action stream")
}

// ActionCount returns the number of actions shown in the actions panel.
func (sp *StorybookPage) ActionCount() int {
	sp.t.Helper()

	count, err := sp.Page.Locator("#actions li[data-action-id]").Count()
	require.NoError(sp.t, err)
	return count
}

// WaitForActionCount waits until the actions panel shows at least n actions.
func (sp *StorybookPage) WaitForActionCount(n int, timeout float64) {
	sp.t.Helper()

	_, err := sp.Page.WaitForFunction(`(n) => document.querySelectorAll('#actions li[data-action-id]').length >= n`, n,
		playwright.PageWaitForFunctionOptions{Timeout: playwright.Float(timeout)})
	require.NoError(sp.t, err, "expected at least %d actions", n)
}

// SwitchTheme clicks the theme switcher and waits for the page to reload.
func (sp *StorybookPage) SwitchTheme(theme string) {
	sp.t.Helper()

	err := sp.Page.Locator("#theme-switcher a[data-theme-switch='" + theme + "']").Click()
	require.NoError(sp.t, err)

	err = sp.Page.Locator("#theme-switcher[data-theme='" + theme + "']").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(5000),
	})
	require.NoError(sp.t, err, "theme was not switched")
}

// SetControl changes a select control and waits for the story to reload with the new args.
func (sp *StorybookPage) SetControl(name, value string) {
	sp.t.Helper()

	_, err := sp.Page.Locator("#controls select[name='" + name + "']").SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	})
	require.NoError(sp.t, err)

	err = sp.Page.WaitForURL("**"+name+"="+value+"*", playwright.PageWaitForURLOptions{Timeout: playwright.Float(5000)})
	require.NoError(sp.t, err, "controls were not submitted")
}

// ToggleControl clicks a checkbox control and waits for the reload.
func (sp *StorybookPage) ToggleControl(name string) {
	sp.t.Helper()

	_, err := sp.Page.ExpectNavigation(func() error {
		return sp.Page.Locator("#controls input[type='checkbox'][name='" + name + "']").Click()
	}, playwright.PageExpectNavigationOptions{Timeout: playwright.Float(5000)})
	require.NoError(sp.t, err)
}
