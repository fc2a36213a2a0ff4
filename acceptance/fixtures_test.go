//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestFixtures bundles the fixtures most tests need.
type TestFixtures struct {
	App       *TestApp
	PW        *PlaywrightFixture
	Ctx       playwright.BrowserContext
	Storybook *StorybookPage
}

// WithTestFixtures creates all fixtures, registers their cleanup and calls fn.
func WithTestFixtures(t *testing.T, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	app := NewTestApp(t)
	t.Cleanup(func() { app.Close() })

	pw := NewPlaywrightFixture(t)
	t.Cleanup(func() { pw.Close() })

	ctx := pw.NewContext(t, "light")
	t.Cleanup(func() { ctx.Close() })

	fn(t, &TestFixtures{
		App:       app,
		PW:        pw,
		Ctx:       ctx,
		Storybook: NewStorybookPage(t, ctx, app.StorybookURL),
	})
}
