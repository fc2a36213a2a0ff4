package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "storybook",
		Short:         "Browse, export and render the UI kit component stories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a storybook.yaml config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newRenderCmd())

	return cmd
}
