package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "safebite",
	Short: "SafeBite Korea About page",
	Long: `safebite serves and renders the bilingual SafeBite Korea About page.

Available commands:
  serve       Run the HTTP server
  render      Print the rendered page for one locale
  export      Write the full page for every locale to a directory
  validate    Check that every locale has a complete, matching content tree
  locales     List the supported locales

Use "safebite [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
