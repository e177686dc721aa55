package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/safebite/internal/content"
)

// HealthHandler reports whether the service can serve pages.
type HealthHandler struct {
	catalog *content.Catalog
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalog *content.Catalog) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// HealthGet returns OK while the content catalog is valid.
func (h *HealthHandler) HealthGet(c echo.Context) error {
	if err := h.catalog.Validate(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Code: "content_invalid", Message: err.Error()})
	}
	return c.String(http.StatusOK, "OK")
}
