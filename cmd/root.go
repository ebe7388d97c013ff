package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual portfolio site",
	Long: `portfolio serves a personal portfolio in English and Portuguese with a
server-driven detail panel for projects, experience and CV previews.

Settings come from an optional YAML file and environment variables; a .env
file in the working directory is loaded automatically. Without a
subcommand it behaves like serve.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (environment variables override it)")
}
