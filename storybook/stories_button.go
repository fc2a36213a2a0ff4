package storybook

import (
	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/uikit/ui"
)

const buttonTitle = "Components/Button"

func label(args Args, fallback string) templ.Component {
	if args.Label != "" {
		return ui.Text(args.Label)
	}
	return ui.Text(fallback)
}

// argsButton renders the single button of an args driven story.
// With AsChild the label is rendered into a link.
func argsButton(args Args, fallback string) templ.Component {
	if args.AsChild {
		return actionButton(args, ui.El("a", templ.Attributes{"href": "#"}, label(args, fallback)))
	}
	return actionButton(args, label(args, fallback))
}

func variantRow(class string, base Args, labels map[ui.ButtonVariant]string, variants ...ui.ButtonVariant) templ.Component {
	return row(class, lo.Map(variants, func(v ui.ButtonVariant, _ int) templ.Component {
		args := base
		args.Variant = string(v)
		return actionButton(args, ui.Text(labels[v]))
	}))
}

// groupedButton is an outline button whose corners are adjusted by class to join its neighbours.
func groupedButton(class, text string) templ.Component {
	return ui.Button(ui.ButtonProps{
		Variant: ui.ButtonVariantOutline,
		Class:   class,
		Attrs:   templ.Attributes{"data-action-args": Args{Variant: "outline"}.Query().Encode()},
	}, ui.Text(text))
}

var variantLabels = map[ui.ButtonVariant]string{
	ui.ButtonVariantPrimary:   "Primary",
	ui.ButtonVariantSecondary: "Secondary",
	ui.ButtonVariantOutline:   "Outline",
	ui.ButtonVariantGhost:     "Ghost",
	ui.ButtonVariantDanger:    "Danger",
}

// ButtonStories documents the Button component.
func ButtonStories() []Story {
	return []Story{
		{
			Title:       buttonTitle,
			Name:        "Default",
			Description: "The default button with primary styling.",
			Layout:      LayoutCentered,
			Args:        Args{Variant: "primary", Size: "md"},
			Controls:    true,
			Render: func(args Args) templ.Component {
				return argsButton(args, "Button")
			},
			Source: `ui.Button(ui.ButtonProps{}, ui.Text("Button"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "Variants",
			Description: "The button comes in five variants: primary, secondary, outline, ghost, and danger.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return variantRow("flex flex-wrap gap-4", Args{}, variantLabels, ui.ButtonVariants()...)
			},
			Source: `ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantPrimary}, ui.Text("Primary"))
ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantSecondary}, ui.Text("Secondary"))
ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantOutline}, ui.Text("Outline"))
ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantGhost}, ui.Text("Ghost"))
ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantDanger}, ui.Text("Danger"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "Sizes",
			Description: "Buttons are available in three sizes: small (sm), medium (md), and large (lg).",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return row("flex flex-wrap items-center gap-4", []templ.Component{
					actionButton(Args{Size: "sm"}, ui.Text("Small")),
					actionButton(Args{Size: "md"}, ui.Text("Medium")),
					actionButton(Args{Size: "lg"}, ui.Text("Large")),
				})
			},
			Source: `ui.Button(ui.ButtonProps{Size: ui.ButtonSizeSm}, ui.Text("Small"))
ui.Button(ui.ButtonProps{Size: ui.ButtonSizeMd}, ui.Text("Medium"))
ui.Button(ui.ButtonProps{Size: ui.ButtonSizeLg}, ui.Text("Large"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "Disabled",
			Description: "Disabled buttons cannot be clicked and have reduced opacity.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return variantRow("flex flex-wrap gap-4", Args{Disabled: true}, map[ui.ButtonVariant]string{
					ui.ButtonVariantPrimary:   "Primary Disabled",
					ui.ButtonVariantSecondary: "Secondary Disabled",
					ui.ButtonVariantOutline:   "Outline Disabled",
					ui.ButtonVariantGhost:     "Ghost Disabled",
					ui.ButtonVariantDanger:    "Danger Disabled",
				}, ui.ButtonVariants()...)
			},
			Source: `ui.Button(ui.ButtonProps{Disabled: true}, ui.Text("Primary Disabled"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "Loading",
			Description: "Loading buttons display a spinner and are automatically disabled.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return variantRow("flex flex-wrap gap-4", Args{Loading: true}, map[ui.ButtonVariant]string{
					ui.ButtonVariantPrimary:   "Loading...",
					ui.ButtonVariantSecondary: "Processing",
					ui.ButtonVariantOutline:   "Please wait",
					ui.ButtonVariantDanger:    "Deleting...",
				}, ui.ButtonVariantPrimary, ui.ButtonVariantSecondary, ui.ButtonVariantOutline, ui.ButtonVariantDanger)
			},
			Source: `ui.Button(ui.ButtonProps{Loading: true}, ui.Text("Loading..."))`,
		},
		{
			Title:       buttonTitle,
			Name:        "SmallVariants",
			Description: "All variants in small size.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return variantRow("flex flex-wrap gap-3", Args{Size: "sm"}, variantLabels, ui.ButtonVariants()...)
			},
			Source: `ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantPrimary, Size: ui.ButtonSizeSm}, ui.Text("Primary"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "LargeVariants",
			Description: "All variants in large size.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return variantRow("flex flex-wrap gap-4", Args{Size: "lg"}, variantLabels, ui.ButtonVariants()...)
			},
			Source: `ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantPrimary, Size: ui.ButtonSizeLg}, ui.Text("Primary"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "WithIcons",
			Description: "Buttons can contain icons alongside text by passing them as content.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				withIcon := func(variant ui.ButtonVariant, icon, text string) templ.Component {
					return actionButton(Args{Variant: string(variant)}, iconLabel(icon, text))
				}
				return row("flex flex-wrap gap-4", []templ.Component{
					withIcon(ui.ButtonVariantPrimary, "✓", "Save Changes"),
					withIcon(ui.ButtonVariantSecondary, "✕", "Cancel"),
					withIcon(ui.ButtonVariantOutline, "⚙", "Settings"),
					withIcon(ui.ButtonVariantDanger, "🗑", "Delete"),
				})
			},
			Source: `templ iconLabel(icon string, text string) {
	<span><span class="mr-2" aria-hidden="true">{ icon }</span>{ text }</span>
}

@ui.Button(ui.ButtonProps{}, iconLabel("✓", "Save Changes"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "AsChild",
			Description: "With asChild the button styles a caller supplied element, here a link, instead of rendering its own button.",
			Layout:      LayoutCentered,
			Args:        Args{AsChild: true, Variant: "outline"},
			Controls:    true,
			Render: func(args Args) templ.Component {
				return argsButton(args, "Link")
			},
			Source: `ui.Button(ui.ButtonProps{AsChild: true}, ui.El("a", templ.Attributes{"href": "/docs"}, ui.Text("Link")))`,
		},
		{
			Title:       buttonTitle,
			Name:        "Playground",
			Description: "Use the controls below to interactively test all button props.",
			Layout:      LayoutCentered,
			Args:        Args{Variant: "primary", Size: "md"},
			Controls:    true,
			Render: func(args Args) templ.Component {
				return argsButton(args, "Click me")
			},
			Source: `ui.Button(ui.ButtonProps{
	Variant:  ui.ButtonVariantPrimary,
	Size:     ui.ButtonSizeMd,
	Disabled: false,
	Loading:  false,
}, ui.Text("Click me"))`,
		},
		{
			Title:       buttonTitle,
			Name:        "StateMatrix",
			Description: "A comprehensive view of all button variants in different states.",
			Layout:      LayoutPadded,
			Render: func(Args) templ.Component {
				return row("space-y-8", []templ.Component{
					stateSection("Normal State", Args{}),
					stateSection("Disabled State", Args{Disabled: true}),
					stateSection("Loading State", Args{Loading: true}),
				})
			},
		},
		{
			Title:       buttonTitle,
			Name:        "ButtonGroup",
			Description: "Buttons can be grouped together for related actions.",
			Layout:      LayoutCentered,
			Render: func(Args) templ.Component {
				return buttonGroup()
			},
			Source: `ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantOutline, Class: "rounded-r-none border-r-0"}, ui.Text("Left"))`,
		},
	}
}
