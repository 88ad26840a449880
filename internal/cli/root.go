// Package cli provides the Cobra command structure for markmode.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markmode/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the global flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root markmode command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "markmode",
		Short: "Dual-surface Markdown editing from the command line",
		Long: `markmode is the command-line host for a dual-surface Markdown editing
core. A document is one body of Markdown shown through two surfaces: the raw
source, and a rendered view with syntax markers elided. markmode inspects the
offset maps between the two, prints the rendered projection, and simulates
mode switches with cursor restoration.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newMapCommand(flags))
	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newSwitchCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
