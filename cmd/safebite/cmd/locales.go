package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/web/src/templates/pages"
	"github.com/spf13/cobra"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the supported locales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tLABEL\tURL\tDEFAULT")
		for _, l := range locale.Supported() {
			def := ""
			if l == locale.Default {
				def = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l, l.Label(), pages.AboutURL(l), def)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}
