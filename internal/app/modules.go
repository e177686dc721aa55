package app

import (
	"github.com/nfrund/safebite/internal/about"
	"github.com/nfrund/safebite/internal/module"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		about.New(aboutDeps(deps)),
	}
}
