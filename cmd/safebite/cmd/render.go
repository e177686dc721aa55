package cmd

import (
	"github.com/nfrund/safebite/internal/about"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	renderLang     string
	renderFragment bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the rendered About page for one locale",
	Long: `Render the About page and write the HTML to stdout.

Examples:
  safebite render                    # English, full document
  safebite render --lang ko          # Korean, full document
  safebite render --lang ko --fragment  # only the #about element`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := locale.Parse(renderLang)
		if err != nil {
			return err
		}
		catalog, err := content.Builtin()
		if err != nil {
			return err
		}

		kind := about.FullPage
		if renderFragment {
			kind = about.Fragment
		}
		pages := about.NewPages(catalog, rendering.NewUniversalRenderer(), nil)
		body, err := pages.Render(cmd.Context(), l, kind)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(body)
		return err
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderLang, "lang", locale.Default.String(), "locale to render (en or ko)")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "render only the #about element")
	rootCmd.AddCommand(renderCmd)
}
