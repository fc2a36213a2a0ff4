//go:build acceptance
// +build acceptance

package acceptance

import (
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// PlaywrightFixture holds a running Playwright driver and a Chromium browser.
type PlaywrightFixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// NewPlaywrightFixture starts Chromium headless unless HEADLESS=false is set.
func NewPlaywrightFixture(t *testing.T) *PlaywrightFixture {
	t.Helper()

	pw, err := playwright.Run()
	require.NoError(t, err, "failed to start playwright")

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(os.Getenv("HEADLESS") != "false"),
	})
	require.NoError(t, err, "failed to launch browser")

	return &PlaywrightFixture{PW: pw, Browser: browser}
}

// NewContext creates an isolated browser context. A colorScheme of "dark" emulates a dark mode preference.
func (pf *PlaywrightFixture) NewContext(t *testing.T, colorScheme string) playwright.BrowserContext {
	t.Helper()

	opts := playwright.BrowserNewContextOptions{}
	if colorScheme == "dark" {
		opts.ColorScheme = playwright.ColorSchemeDark
	}
	ctx, err := pf.Browser.NewContext(opts)
	require.NoError(t, err, "failed to create browser context")
	return ctx
}

func (pf *PlaywrightFixture) Close() {
	pf.Browser.Close()
	pf.PW.Stop()
}
