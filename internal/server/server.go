package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/safebite/internal/about"
	"github.com/nfrund/safebite/internal/app"
	"github.com/nfrund/safebite/internal/config"
	"github.com/nfrund/safebite/internal/middleware"
	"github.com/nfrund/safebite/internal/module"
	"github.com/nfrund/safebite/internal/registry"
	"github.com/nfrund/safebite/web"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Registry *registry.Registry
	Deps     app.Dependencies

	modules []module.Module
}

// New creates a new Server instance from an injector built by app.NewContainer.
func New(injector do.Injector) (*Server, error) {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	deps, err := app.ResolveDependencies(injector)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.RateLimiter(cfg.RateLimitPerMinute))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	setupErrorHandling(e)

	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: registry.New(cfg),
		Deps:     deps,
		modules:  app.NewModules(deps),
	}, nil
}

// Init registers and boots every module, mounts the core routes and warms
// the render cache. The content catalog is checked first so a broken
// translation stops startup instead of reaching visitors.
func (s *Server) Init(ctx context.Context) error {
	if err := s.Deps.Catalog.Validate(); err != nil {
		return fmt.Errorf("content catalog: %w", err)
	}

	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}

	s.RegisterRoutes()

	if pages, ok := registry.Get(s.Registry, about.PagesKey); ok {
		if err := pages.Warm(ctx); err != nil {
			return fmt.Errorf("warm render cache: %w", err)
		}
	}

	slog.Info("Server initialized", "modules", len(s.modules), "default_locale", s.Cfg.Locale())
	return nil
}
