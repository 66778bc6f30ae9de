package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/model"
	"tourbook/internal/service"
)

// AdminHandler bundles the role-gated JSON CRUD for tours and reference data.
type AdminHandler struct {
	catalogService   service.CatalogService
	referenceService service.ReferenceService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(catalogService service.CatalogService, referenceService service.ReferenceService) *AdminHandler {
	return &AdminHandler{
		catalogService:   catalogService,
		referenceService: referenceService,
	}
}

// TourRequest represents a tour create/update request.
type TourRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days" validate:"required,min=1"`
	CityID       uint            `json:"city_id" validate:"required"`
	HotelID      uint            `json:"hotel_id" validate:"required"`
	ClientID     *uint           `json:"client_id"`
}

// CityRequest represents a city create/update request.
type CityRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// HotelRequest represents a hotel create/update request.
type HotelRequest struct {
	Name   string `json:"name" validate:"required"`
	Stars  int    `json:"stars" validate:"required,min=1,max=5"`
	CityID uint   `json:"city_id" validate:"required"`
}

// ClientRequest represents a client create/update request.
type ClientRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func domainError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// ListTours godoc
// @Summary List all tours
// @Tags admin
// @Produce json
// @Success 200 {array} model.Tour
// @Router /admin/tours [get]
func (h *AdminHandler) ListTours(c echo.Context) error {
	tours, err := h.catalogService.ListTours(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tours)
}

// CreateTour godoc
// @Summary Create a tour
// @Tags admin
// @Accept json
// @Produce json
// @Param request body TourRequest true "Tour data"
// @Success 201 {object} model.Tour
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/tours [post]
func (h *AdminHandler) CreateTour(c echo.Context) error {
	var req TourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tour, err := h.catalogService.CreateTour(c.Request().Context(), tourInput(req))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, tour)
}

// UpdateTour godoc
// @Summary Update a tour
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Tour ID"
// @Param request body TourRequest true "Tour data"
// @Success 200 {object} model.Tour
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/tours/{id} [put]
func (h *AdminHandler) UpdateTour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req TourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tour, err := h.catalogService.UpdateTour(c.Request().Context(), id, tourInput(req))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tour)
}

// DeleteTour godoc
// @Summary Delete a tour
// @Tags admin
// @Produce json
// @Param id path int true "Tour ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/tours/{id} [delete]
func (h *AdminHandler) DeleteTour(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteTour(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "tour deleted"})
}

func tourInput(req TourRequest) service.TourInput {
	return service.TourInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		CityID:       req.CityID,
		HotelID:      req.HotelID,
		ClientID:     req.ClientID,
	}
}

// ListCities returns all cities.
func (h *AdminHandler) ListCities(c echo.Context) error {
	cities, err := h.referenceService.ListCities(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, cities)
}

// CreateCity creates a city.
func (h *AdminHandler) CreateCity(c echo.Context) error {
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	city := &model.City{Name: req.Name, Country: req.Country}
	if err := h.referenceService.CreateCity(c.Request().Context(), city); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, city)
}

// UpdateCity updates a city.
func (h *AdminHandler) UpdateCity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	city := &model.City{ID: id, Name: req.Name, Country: req.Country}
	if err := h.referenceService.UpdateCity(c.Request().Context(), city); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, city)
}

// DeleteCity deletes a city unless tours or hotels still reference it.
func (h *AdminHandler) DeleteCity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.referenceService.DeleteCity(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "city deleted"})
}

// ListHotels returns all hotels.
func (h *AdminHandler) ListHotels(c echo.Context) error {
	hotels, err := h.referenceService.ListHotels(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// CreateHotel creates a hotel.
func (h *AdminHandler) CreateHotel(c echo.Context) error {
	var req HotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hotel := &model.Hotel{Name: req.Name, Stars: req.Stars, CityID: req.CityID}
	if err := h.referenceService.CreateHotel(c.Request().Context(), hotel); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel updates a hotel.
func (h *AdminHandler) UpdateHotel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req HotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hotel := &model.Hotel{ID: id, Name: req.Name, Stars: req.Stars, CityID: req.CityID}
	if err := h.referenceService.UpdateHotel(c.Request().Context(), hotel); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// DeleteHotel deletes a hotel unless tours still reference it.
func (h *AdminHandler) DeleteHotel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.referenceService.DeleteHotel(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "hotel deleted"})
}

// ListClients returns all clients.
func (h *AdminHandler) ListClients(c echo.Context) error {
	clients, err := h.referenceService.ListClients(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, clients)
}

// CreateClient creates a client.
func (h *AdminHandler) CreateClient(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	client := &model.Client{FullName: req.FullName, Email: req.Email, Phone: req.Phone}
	if err := h.referenceService.CreateClient(c.Request().Context(), client); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, client)
}

// UpdateClient updates a client.
func (h *AdminHandler) UpdateClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	client := &model.Client{ID: id, FullName: req.FullName, Email: req.Email, Phone: req.Phone}
	if err := h.referenceService.UpdateClient(c.Request().Context(), client); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient deletes a client unless tours still reference it.
func (h *AdminHandler) DeleteClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.referenceService.DeleteClient(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "client deleted"})
}
