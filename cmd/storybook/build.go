package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/networkteam/uikit/storybook"
)

type buildOptions struct {
	outDir string
	theme  string
}

func newBuildCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the storybook as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootFlags)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			themeName := cfg.DefaultTheme
			if cmd.Flags().Changed("theme") {
				themeName = opts.theme
			}
			theme, err := storybook.ParseTheme(themeName, storybook.ThemeLight)
			if err != nil {
				return err
			}

			written, err := storybook.Build(cmd.Context(), storybook.DefaultCatalog(), opts.outDir, storybook.BuildOptions{
				Title: cfg.Title,
				Theme: theme,
			})
			if err != nil {
				return fmt.Errorf("building storybook: %w", err)
			}

			logger.Debug("Static storybook written", slog.String("dir", opts.outDir), slog.Int("files", len(written)))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(written), opts.outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "storybook-static", "Output directory")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme of the exported pages: light or dark")

	return cmd
}
