package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/networkteam/uikit/storybook"
)

type renderOptions struct {
	variant  string
	size     string
	disabled bool
	loading  bool
	asChild  bool
	label    string
	theme    string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render STORY",
		Short: "Render the canvas of a story to stdout",
		Example: `  storybook render components-button--default --variant danger --size lg
  storybook render components-button--as-child --loading`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := storybook.DefaultCatalog()
			story, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			storyArgs, err := storybook.ParseArgs(story.Args, renderQuery(cmd, opts))
			if err != nil {
				return err
			}
			theme, err := storybook.ParseTheme(opts.theme, storybook.ThemeLight)
			if err != nil {
				return err
			}

			html, err := storybook.RenderStory(cmd.Context(), catalog, story.ID(), storyArgs, theme)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", story.ID(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "", "Button variant: primary, secondary, outline, ghost or danger")
	cmd.Flags().StringVar(&opts.size, "size", "", "Button size: sm, md or lg")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Render the button disabled")
	cmd.Flags().BoolVar(&opts.loading, "loading", false, "Render the button loading")
	cmd.Flags().BoolVar(&opts.asChild, "as-child", false, "Apply the button styles to a link")
	cmd.Flags().StringVar(&opts.label, "label", "", "Button label")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme: light or dark")

	return cmd
}

// renderQuery passes only explicitly set flags, so story defaults apply otherwise.
func renderQuery(cmd *cobra.Command, opts *renderOptions) url.Values {
	q := url.Values{}
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			q.Set(key, value)
		}
	}
	set("variant", "variant", opts.variant)
	set("size", "size", opts.size)
	set("disabled", "disabled", strconv.FormatBool(opts.disabled))
	set("loading", "loading", strconv.FormatBool(opts.loading))
	set("as-child", "asChild", strconv.FormatBool(opts.asChild))
	set("label", "label", opts.label)
	return q
}
