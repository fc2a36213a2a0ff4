package storybook

import "github.com/a-h/templ"

func IntroductionStory() Story {
	return Story{
		Title:       "Welcome",
		Name:        "Introduction",
		Description: "What this component library offers and how to browse it.",
		Layout:      LayoutPadded,
		Render: func(Args) templ.Component {
			return introduction()
		},
	}
}
