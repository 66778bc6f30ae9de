package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tourbook/internal/handler"
	"tourbook/internal/model"
	"tourbook/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions session.StoreInterface,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	cartHandler *handler.CartHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(session.Resolve(sessions))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public pages
	e.GET("/", pageHandler.Index)
	e.GET("/tours/:id", pageHandler.TourDetail)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)

	// Session-gated pages and cart endpoints
	authed := e.Group("", session.RequireAuth)
	authed.GET("/logout", authHandler.Logout)
	authed.GET("/profile", authHandler.ProfilePage)
	authed.POST("/profile", authHandler.UpdateProfile)
	authed.GET("/cart", cartHandler.ViewCart)
	authed.POST("/cart/add/:tourId", cartHandler.AddToCart)
	authed.POST("/cart/remove/:itemId", cartHandler.RemoveFromCart)

	// Admin JSON API
	admin := e.Group("/admin", session.RequireRole(model.RoleAdmin))
	admin.GET("/tours", adminHandler.ListTours)
	admin.POST("/tours", adminHandler.CreateTour)
	admin.PUT("/tours/:id", adminHandler.UpdateTour)
	admin.DELETE("/tours/:id", adminHandler.DeleteTour)
	admin.GET("/cities", adminHandler.ListCities)
	admin.POST("/cities", adminHandler.CreateCity)
	admin.PUT("/cities/:id", adminHandler.UpdateCity)
	admin.DELETE("/cities/:id", adminHandler.DeleteCity)
	admin.GET("/hotels", adminHandler.ListHotels)
	admin.POST("/hotels", adminHandler.CreateHotel)
	admin.PUT("/hotels/:id", adminHandler.UpdateHotel)
	admin.DELETE("/hotels/:id", adminHandler.DeleteHotel)
	admin.GET("/clients", adminHandler.ListClients)
	admin.POST("/clients", adminHandler.CreateClient)
	admin.PUT("/clients/:id", adminHandler.UpdateClient)
	admin.DELETE("/clients/:id", adminHandler.DeleteClient)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
