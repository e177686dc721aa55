package layouts

import (
	"context"

	"github.com/a-h/templ"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/view"
	cmp "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// HTMXURL is the htmx build the locale switch controls rely on.
const HTMXURL = "https://unpkg.com/htmx.org@2.0.4"

// StylesheetPath is where the embedded stylesheet is served.
const StylesheetPath = "/static/about.css"

// Base wraps body in the HTML5 document shell. The document language follows
// the active locale.
func Base(ctx context.Context, title string, lang locale.Locale, body templ.Component) cmp.Node {
	return components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(title),
		Language: lang.String(),
		Head: []cmp.Node{
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.Link(g.Rel("stylesheet"), g.Href(StylesheetPath)),
			g.Script(g.Src(HTMXURL), g.Defer()),
		},
		Body: []cmp.Node{
			view.AdaptTemplToGomponent(ctx, body),
		},
	})
}
