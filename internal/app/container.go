package app

import (
	"fmt"

	"github.com/nfrund/safebite/internal/cache"
	"github.com/nfrund/safebite/internal/config"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/pubsub"
	"github.com/nfrund/safebite/internal/rendering"
	"github.com/samber/do/v2"
)

// NewContainer builds the injector that owns the application's shared services.
func NewContainer(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.Provide(injector, func(do.Injector) (*content.Catalog, error) {
		return content.Builtin()
	})
	do.Provide(injector, func(do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(injector, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(injector, func(i do.Injector) (*cache.Cache[[]byte], error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.NewBytes(cache.Config{
			Name:       "render",
			MaxCost:    cfg.RenderCacheMaxCost,
			DefaultTTL: cfg.RenderCacheTTL,
		})
	})

	return injector
}

// ResolveDependencies pulls the module dependencies out of the injector.
func ResolveDependencies(injector do.Injector) (Dependencies, error) {
	catalog, err := do.Invoke[*content.Catalog](injector)
	if err != nil {
		return Dependencies{}, fmt.Errorf("content catalog: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](injector)
	if err != nil {
		return Dependencies{}, fmt.Errorf("renderer: %w", err)
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](injector)
	if err != nil {
		return Dependencies{}, fmt.Errorf("event bus: %w", err)
	}
	renderCache, err := do.Invoke[*cache.Cache[[]byte]](injector)
	if err != nil {
		return Dependencies{}, fmt.Errorf("render cache: %w", err)
	}

	return Dependencies{
		Catalog:     catalog,
		Publisher:   bus,
		Subscriber:  bus,
		Renderer:    renderer,
		RenderCache: renderCache,
	}, nil
}
