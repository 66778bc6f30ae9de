package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/service"
	"tourbook/internal/session"
)

// PageHandler serves the public browsing pages.
type PageHandler struct {
	catalogService service.CatalogService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(catalogService service.CatalogService) *PageHandler {
	return &PageHandler{catalogService: catalogService}
}

// Index renders the tour catalog.
func (h *PageHandler) Index(c echo.Context) error {
	tours, err := h.catalogService.ListTours(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.Render(http.StatusOK, "index.html", echo.Map{
		"User":  session.FromContext(c),
		"Tours": tours,
	})
}

// TourDetail renders a single tour.
func (h *PageHandler) TourDetail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	tour, err := h.catalogService.GetTour(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.Render(http.StatusOK, "tour.html", echo.Map{
		"User": session.FromContext(c),
		"Tour": tour,
	})
}
