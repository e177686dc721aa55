package app

import (
	"github.com/nfrund/safebite/internal/about"
	"github.com/nfrund/safebite/internal/cache"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/pubsub"
	"github.com/nfrund/safebite/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Catalog     *content.Catalog
	Publisher   pubsub.Publisher
	Subscriber  pubsub.Subscriber
	Renderer    rendering.Renderer
	RenderCache *cache.Cache[[]byte]
}

// aboutDeps creates the dependency struct for the about module.
func aboutDeps(deps Dependencies) about.Dependencies {
	return about.Dependencies{
		Catalog:    deps.Catalog,
		Renderer:   deps.Renderer,
		Cache:      deps.RenderCache,
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
	}
}
