package views

import (
	"net/url"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/uikit/actions"
	"github.com/networkteam/uikit/ui"
)

// ControlsProps describes the editable args of a story.
type ControlsProps struct {
	Variant  string
	Size     string
	Disabled bool
	Loading  bool
	AsChild  bool
	Label    string
}

type DocsPageProps struct {
	Sidebar SidebarProps
	Story   StoryEntry
	// Canvas is the rendered story.
	Canvas   templ.Component
	Layout   string
	Controls *ControlsProps
	Source   string
	Actions  []actions.Action
}

// activateAttrs points the canvas at the activate endpoint. Static builds have none.
func activateAttrs(opts HandlerOptions, storyID string) templ.Attributes {
	if opts.static() {
		return nil
	}
	return templ.Attributes{"data-activate-url": opts.activateURL(storyID)}
}

func variantOptions() []string {
	return lo.Map(ui.ButtonVariants(), func(v ui.ButtonVariant, _ int) string { return string(v) })
}

func sizeOptions() []string {
	return lo.Map(ui.ButtonSizes(), func(s ui.ButtonSize, _ int) string { return string(s) })
}

func encodeArgs(args map[string]string) string {
	values := url.Values{}
	for k, v := range args {
		values.Set(k, v)
	}
	return values.Encode()
}
