package cmd

import (
	"fmt"

	"github.com/nfrund/safebite/internal/about"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/rendering"
	"github.com/nfrund/safebite/internal/storage"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the About page for every locale to a directory",
	Long: `Render the full About page for every supported locale and write it to
<dir>/about/<locale>.html. Existing files are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Builtin()
		if err != nil {
			return err
		}
		pages := about.NewPages(catalog, rendering.NewUniversalRenderer(), nil)
		written, err := pages.Export(cmd.Context(), storage.NewDirStore(exportDir))
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}
