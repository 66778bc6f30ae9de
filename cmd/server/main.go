package main

import (
	"log"
	"net/http"

	_ "tourbook/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"tourbook/internal/cache"
	"tourbook/internal/config"
	"tourbook/internal/db"
	"tourbook/internal/handler"
	"tourbook/internal/model"
	"tourbook/internal/repository"
	"tourbook/internal/router"
	"tourbook/internal/service"
	"tourbook/internal/session"
	"tourbook/internal/web"
)

// @title Tourbook API
// @version 1.0
// @description Travel-agency booking service: tour catalog, per-user shopping cart, and admin reference-data management over cookie sessions.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := web.NewRenderer(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Additive migrations only; reference data comes from cmd/seed.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.City{},
		&model.Hotel{},
		&model.Client{},
		&model.Tour{},
		&model.Cart{},
		&model.CartLine{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	cacheClient := cache.New(redisClient)
	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tourRepo := repository.NewTourRepository(gormDB)
	cityRepo := repository.NewCityRepository(gormDB)
	hotelRepo := repository.NewHotelRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions)
	catalogService := service.NewCatalogService(tourRepo, cityRepo, hotelRepo, clientRepo, cartRepo, cacheClient)
	referenceService := service.NewReferenceService(cityRepo, hotelRepo, clientRepo, tourRepo)
	cartService := service.NewCartService(cartRepo, tourRepo)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(catalogService)
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.CookieSecure)
	cartHandler := handler.NewCartHandler(cartService)
	adminHandler := handler.NewAdminHandler(catalogService, referenceService)

	// Register routes
	router.Register(
		e,
		sessions,
		pageHandler,
		authHandler,
		cartHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
