package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/web/src/templates/pages"
)

// HomeHandler handles requests for the site root.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet sends visitors to the About page. A supported lang parameter is
// carried over.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	target := pages.AboutPath
	if l, err := locale.Parse(c.QueryParam("lang")); err == nil {
		target = pages.AboutURL(l)
	}
	return c.Redirect(http.StatusFound, target)
}
