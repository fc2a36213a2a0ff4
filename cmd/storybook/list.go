package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/networkteam/uikit/storybook"
)

type listOptions struct {
	jsonOutput bool
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	descriptionStyle = lipgloss.NewStyle().Italic(true).PaddingLeft(4)
	controlsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stories of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := storybook.DefaultCatalog()
			if opts.jsonOutput {
				return renderListJSON(cmd.OutOrStdout(), catalog)
			}
			return renderList(cmd.OutOrStdout(), catalog, isTerminal(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderList(w io.Writer, catalog *storybook.Catalog, styled bool) error {
	render := func(style lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return style.Render(s)
	}

	byTitle := lo.GroupBy(catalog.Stories(), func(s storybook.Story) string { return s.Title })
	for _, title := range catalog.Titles() {
		fmt.Fprintln(w, render(titleStyle, title))
		for _, s := range byTitle[title] {
			line := fmt.Sprintf("  %s %s", s.Name, render(idStyle, "("+s.ID()+")"))
			if s.Controls {
				line += " " + render(controlsStyle, "[controls]")
			}
			fmt.Fprintln(w, line)
			if s.Description != "" {
				fmt.Fprintln(w, render(descriptionStyle, s.Description))
			}
		}
	}
	return nil
}

type listJSONStory struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Controls    bool              `json:"controls"`
	Args        map[string]string `json:"args,omitempty"`
}

func renderListJSON(w io.Writer, catalog *storybook.Catalog) error {
	stories := lo.Map(catalog.Stories(), func(s storybook.Story, _ int) listJSONStory {
		return listJSONStory{
			ID:          s.ID(),
			Title:       s.Title,
			Name:        s.Name,
			Description: s.Description,
			Controls:    s.Controls,
			Args:        s.Args.Values(),
		}
	})

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stories)
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
