package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/service"
	"tourbook/internal/session"
)

// CartHandler serves the cart page and the asynchronous add/remove endpoints.
// The POST endpoints always answer with a {success, message} JSON body so the
// page script can branch without parsing HTML.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// CartMutationResponse is the JSON body of the add/remove endpoints.
type CartMutationResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	LineID   uint   `json:"line_id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// ViewCart renders the cart page with lines and the live-price total.
func (h *CartHandler) ViewCart(c echo.Context) error {
	sess := session.FromContext(c)

	view, err := h.cartService.ViewCart(c.Request().Context(), sess.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.Render(http.StatusOK, "cart.html", echo.Map{
		"User": sess,
		"Cart": view,
	})
}

// AddToCart godoc
// @Summary Add a tour to the caller's cart
// @Description Inserts a quantity-1 line on first add, increments the existing line otherwise.
// @Tags cart
// @Produce json
// @Param tourId path int true "Tour ID"
// @Success 200 {object} CartMutationResponse
// @Failure 400 {object} CartMutationResponse
// @Failure 401 {object} CartMutationResponse
// @Failure 404 {object} CartMutationResponse
// @Failure 500 {object} CartMutationResponse
// @Router /cart/add/{tourId} [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	sess := session.FromContext(c)

	tourID, err := strconv.ParseUint(c.Param("tourId"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, CartMutationResponse{
			Success: false, Message: "invalid tour id",
		})
	}

	line, err := h.cartService.AddToCart(c.Request().Context(), sess.UserID, uint(tourID))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, CartMutationResponse{
			Success: false, Message: httpErr.Message,
		})
	}

	return c.JSON(http.StatusOK, CartMutationResponse{
		Success:  true,
		Message:  "tour added to cart",
		LineID:   line.ID,
		Quantity: line.Quantity,
	})
}

// RemoveFromCart godoc
// @Summary Remove a cart line by its id
// @Tags cart
// @Produce json
// @Param itemId path int true "Cart line ID"
// @Success 200 {object} CartMutationResponse
// @Failure 400 {object} CartMutationResponse
// @Failure 401 {object} CartMutationResponse
// @Failure 403 {object} CartMutationResponse
// @Failure 404 {object} CartMutationResponse
// @Failure 500 {object} CartMutationResponse
// @Router /cart/remove/{itemId} [post]
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	sess := session.FromContext(c)

	lineID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, CartMutationResponse{
			Success: false, Message: "invalid cart item id",
		})
	}

	if err := h.cartService.RemoveFromCart(c.Request().Context(), sess.UserID, uint(lineID)); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, CartMutationResponse{
			Success: false, Message: httpErr.Message,
		})
	}

	return c.JSON(http.StatusOK, CartMutationResponse{
		Success: true,
		Message: "item removed from cart",
	})
}
