package about

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/middleware"
	"github.com/nfrund/safebite/internal/pubsub"
	"github.com/nfrund/safebite/web/src/templates/pages"
)

const (
	// HeaderHXRequest is set by htmx on every request it issues.
	HeaderHXRequest = "HX-Request"
	// HeaderContentLanguage names the locale of the response body.
	HeaderContentLanguage = "Content-Language"
)

// Handler serves the About page and its JSON companions.
type Handler struct {
	pages         *Pages
	catalog       *content.Catalog
	publisher     pubsub.Publisher
	stats         *Stats
	defaultLocale locale.Locale
}

// NewHandler creates a new Handler. publisher may be nil.
func NewHandler(p *Pages, catalog *content.Catalog, publisher pubsub.Publisher, stats *Stats, defaultLocale locale.Locale) *Handler {
	return &Handler{
		pages:         p,
		catalog:       catalog,
		publisher:     publisher,
		stats:         stats,
		defaultLocale: defaultLocale,
	}
}

// LocaleOption describes one switch control for API clients.
type LocaleOption struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// selectLocale applies the requested locale to a fresh store and reports
// whether the view moved away from the initial locale.
func (h *Handler) selectLocale(c echo.Context) (locale.Locale, bool) {
	store := NewStore(h.defaultLocale)
	switched := false
	store.OnChange(func(locale.Locale) { switched = true })
	store.SetLanguage(middleware.LocaleFrom(c))
	return store.Language(), switched
}

// Get renders the About page. htmx requests receive only the #about
// fragment so a locale switch replaces the content in one swap.
func (h *Handler) Get(c echo.Context) error {
	l, switched := h.selectLocale(c)
	kind := FullPage
	if c.Request().Header.Get(HeaderHXRequest) == "true" {
		kind = Fragment
	}

	body, err := h.pages.Render(c.Request().Context(), l, kind)
	if err != nil {
		return fmt.Errorf("about page: %w", err)
	}

	h.publishView(c, PageViewed{Locale: l.String(), Fragment: kind == Fragment, Switched: switched})

	header := c.Response().Header()
	header.Set(HeaderContentLanguage, l.String())
	header.Add(echo.HeaderVary, HeaderHXRequest)
	header.Add(echo.HeaderVary, "Accept-Language")
	return c.HTMLBlob(http.StatusOK, body)
}

// Content returns the selected locale tree as JSON.
func (h *Handler) Content(c echo.Context) error {
	l, _ := h.selectLocale(c)
	c.Response().Header().Set(HeaderContentLanguage, l.String())
	return c.JSON(http.StatusOK, h.catalog.Select(l))
}

// Locales lists the switch controls with the active one marked.
func (h *Handler) Locales(c echo.Context) error {
	active, _ := h.selectLocale(c)
	supported := h.catalog.Locales()
	options := make([]LocaleOption, 0, len(supported))
	for _, l := range supported {
		options = append(options, LocaleOption{
			Code:   l.String(),
			Label:  l.Label(),
			URL:    pages.AboutURL(l),
			Active: l == active,
		})
	}
	return c.JSON(http.StatusOK, options)
}

// Stats returns the per-locale view counters.
func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stats.Snapshot())
}

// publishView reports a view on the bus. A failure is logged and never
// fails the request.
func (h *Handler) publishView(c echo.Context, e PageViewed) {
	if h.publisher == nil {
		return
	}
	ctx := c.Request().Context()
	meta := map[string]string{"request_id": c.Response().Header().Get(echo.HeaderXRequestID)}
	if err := pubsub.Publish(ctx, h.publisher, PageViewedEvent, e, meta); err != nil {
		middleware.FromContext(ctx).Warn("failed to publish page view", "locale", e.Locale, "error", err)
	}
}
