package about

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/safebite/internal/cache"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/middleware"
	"github.com/nfrund/safebite/internal/module"
	"github.com/nfrund/safebite/internal/pubsub"
	"github.com/nfrund/safebite/internal/registry"
	"github.com/nfrund/safebite/internal/rendering"
)

// Service keys other modules and the CLI use to reach the About services.
const (
	PagesKey registry.Key[*Pages] = "about.pages"
	StatsKey registry.Key[*Stats] = "about.stats"
)

// Module serves the About page under /about.
type Module struct {
	module.BaseModule
	catalog    *content.Catalog
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	pages      *Pages
	stats      *Stats

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Dependencies holds the services required by the About module.
type Dependencies struct {
	Catalog    *content.Catalog
	Renderer   rendering.Renderer
	Cache      *cache.Cache[[]byte]
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
}

// New creates a new About module.
func New(deps Dependencies) *Module {
	return &Module{
		catalog:    deps.Catalog,
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		pages:      NewPages(deps.Catalog, deps.Renderer, deps.Cache),
		stats:      NewStats(),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "about"
}

// Pages returns the module's page renderer.
func (m *Module) Pages() *Pages {
	return m.pages
}

// Register publishes the page renderer and counters in the registry.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, PagesKey, m.pages)
	registry.Set(reg, StatsKey, m.stats)
	slog.Info("About module registered")
	return nil
}

// Boot starts the view counter and mounts the routes on g.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting About module...")

	opts := middleware.LocaleOptions{Default: locale.Default}
	if cfg := reg.Config(); cfg != nil {
		opts.Default = cfg.Locale()
		opts.Negotiate = cfg.NegotiateLocale
	}

	if m.subscriber != nil {
		subCtx, cancel := context.WithCancel(ctx)
		if err := m.stats.Subscribe(subCtx, m.subscriber); err != nil {
			cancel()
			return fmt.Errorf("subscribe to %s: %w", PageViewedEvent.Name(), err)
		}
		m.mu.Lock()
		m.cancel = cancel
		m.mu.Unlock()
	}

	h := NewHandler(m.pages, m.catalog, m.publisher, m.stats, opts.Default)
	g.Use(middleware.Locale(opts))
	g.GET("", h.Get)
	g.GET("/content", h.Content)
	g.GET("/locales", h.Locales)
	g.GET("/stats", h.Stats)

	return nil
}

// Shutdown stops the view counter.
func (m *Module) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down About module...")

	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return nil
}
