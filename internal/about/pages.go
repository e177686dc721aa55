package about

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/nfrund/safebite/internal/cache"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/rendering"
	"github.com/nfrund/safebite/internal/view"
	"github.com/nfrund/safebite/web/src/templates/layouts"
	"github.com/nfrund/safebite/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Kind selects between the whole document and the swappable fragment.
type Kind string

const (
	// FullPage is the complete HTML document.
	FullPage Kind = "page"
	// Fragment is the #about element htmx swaps on a locale switch, preceded
	// by the page title for that locale.
	Fragment Kind = "fragment"
)

// Pages renders the About page and memoizes the output per locale and kind.
type Pages struct {
	catalog  *content.Catalog
	renderer rendering.Renderer
	cache    *cache.Cache[[]byte]
}

// NewPages creates a page renderer. cache may be nil to disable memoization.
func NewPages(catalog *content.Catalog, renderer rendering.Renderer, c *cache.Cache[[]byte]) *Pages {
	return &Pages{catalog: catalog, renderer: renderer, cache: c}
}

// Component builds the component for l without consulting the cache.
func (p *Pages) Component(ctx context.Context, l locale.Locale, kind Kind) templ.Component {
	tree := p.catalog.Select(l)
	body := pages.About(pages.AboutProps{Content: tree, Active: l})
	if kind == Fragment {
		// htmx moves a <title> in a partial response into the document head.
		return view.AdaptGomponentToTempl(cmp.Group{
			g.TitleEl(cmp.Text(layouts.CalculateTitle(tree.Title))),
			body,
		})
	}
	return view.AdaptGomponentToTempl(layouts.Base(ctx, tree.Title, l, view.AdaptGomponentToTempl(body)))
}

// Render returns the HTML for l. The returned slice may be shared with the
// cache and must not be modified.
func (p *Pages) Render(ctx context.Context, l locale.Locale, kind Kind) ([]byte, error) {
	key := cacheKey(l, kind)
	if p.cache != nil {
		if body, ok := p.cache.Get(key); ok {
			return body, nil
		}
	}

	body, err := p.renderer.RenderComponent(ctx, p.Component(ctx, l, kind))
	if err != nil {
		return nil, fmt.Errorf("render %s for %s: %w", kind, l, err)
	}
	if p.cache != nil {
		p.cache.Set(key, body, 0)
	}
	return body, nil
}

// Warm renders every locale and kind so the first visitors hit the cache.
func (p *Pages) Warm(ctx context.Context) error {
	for _, l := range p.catalog.Locales() {
		for _, kind := range []Kind{FullPage, Fragment} {
			if _, err := p.Render(ctx, l, kind); err != nil {
				return err
			}
		}
	}
	return nil
}

func cacheKey(l locale.Locale, kind Kind) string {
	return "about:" + string(kind) + ":" + l.String()
}
