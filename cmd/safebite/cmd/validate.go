package cmd

import (
	"fmt"

	"github.com/nfrund/safebite/internal/content"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the content catalog",
	Long: `Validate the built-in content catalog. Every supported locale must provide
a complete tree, and all trees must share the same shape: the same sections,
the same optional fields present, the same lists non-empty.

Output:
  ✅ Success - Lists the validated locales
  ❌ Error   - Shows every validation failure`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Builtin()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ Content validation failed: %v\n", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Content is valid for %d locales\n", len(catalog.Locales()))
		for _, l := range catalog.Locales() {
			fmt.Fprintf(cmd.OutOrStdout(), "   %s: %s\n", l, catalog.Select(l).Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
