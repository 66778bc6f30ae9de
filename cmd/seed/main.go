package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbook/internal/config"
	"tourbook/internal/db"
	"tourbook/internal/model"
)

// Seeds the reference data the catalog pages need and, when ADMIN_USERNAME
// and ADMIN_PASSWORD are set, the initial admin user. Safe to run repeatedly:
// rows are matched by their natural keys and never duplicated.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.City{},
		&model.Hotel{},
		&model.Client{},
		&model.Tour{},
		&model.Cart{},
		&model.CartLine{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	cities := seedCities(ctx, gormDB)
	hotels := seedHotels(ctx, gormDB, cities)
	seedTours(ctx, gormDB, cities, hotels)
	seedAdmin(ctx, gormDB)

	log.Println("Seed complete")
}

func seedCities(ctx context.Context, gormDB *gorm.DB) map[string]model.City {
	data := []model.City{
		{Name: "Lisbon", Country: "Portugal"},
		{Name: "Prague", Country: "Czech Republic"},
		{Name: "Istanbul", Country: "Turkey"},
		{Name: "Sharm El Sheikh", Country: "Egypt"},
	}

	out := make(map[string]model.City, len(data))
	for _, city := range data {
		var existing model.City
		err := gormDB.WithContext(ctx).Where("name = ?", city.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gormDB.WithContext(ctx).Create(&city).Error; err != nil {
				log.Fatalf("Failed to seed city %q: %v", city.Name, err)
			}
			log.Printf("Created city %q", city.Name)
			out[city.Name] = city
			continue
		}
		if err != nil {
			log.Fatalf("Failed to look up city %q: %v", city.Name, err)
		}
		out[existing.Name] = existing
	}
	return out
}

func seedHotels(ctx context.Context, gormDB *gorm.DB, cities map[string]model.City) map[string]model.Hotel {
	data := []struct {
		hotel model.Hotel
		city  string
	}{
		{model.Hotel{Name: "Hotel Avenida Palace", Stars: 5}, "Lisbon"},
		{model.Hotel{Name: "Golden Well", Stars: 4}, "Prague"},
		{model.Hotel{Name: "Pera Palace", Stars: 5}, "Istanbul"},
		{model.Hotel{Name: "Reef Oasis", Stars: 4}, "Sharm El Sheikh"},
	}

	out := make(map[string]model.Hotel, len(data))
	for _, entry := range data {
		hotel := entry.hotel
		hotel.CityID = cities[entry.city].ID

		var existing model.Hotel
		err := gormDB.WithContext(ctx).Where("name = ?", hotel.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gormDB.WithContext(ctx).Create(&hotel).Error; err != nil {
				log.Fatalf("Failed to seed hotel %q: %v", hotel.Name, err)
			}
			log.Printf("Created hotel %q", hotel.Name)
			out[hotel.Name] = hotel
			continue
		}
		if err != nil {
			log.Fatalf("Failed to look up hotel %q: %v", hotel.Name, err)
		}
		out[existing.Name] = existing
	}
	return out
}

func seedTours(ctx context.Context, gormDB *gorm.DB, cities map[string]model.City, hotels map[string]model.Hotel) {
	data := []struct {
		tour  model.Tour
		city  string
		hotel string
	}{
		{model.Tour{Name: "Lisbon Coast Week", Description: "Seven days along the Atlantic coast.", Price: decimal.NewFromInt(899), DurationDays: 7}, "Lisbon", "Hotel Avenida Palace"},
		{model.Tour{Name: "Prague City Break", Description: "Long weekend in the old town.", Price: decimal.NewFromInt(449), DurationDays: 4}, "Prague", "Golden Well"},
		{model.Tour{Name: "Bosphorus Escape", Description: "Five days between two continents.", Price: decimal.NewFromInt(679), DurationDays: 5}, "Istanbul", "Pera Palace"},
		{model.Tour{Name: "Red Sea Diving", Description: "Ten days of reef diving.", Price: decimal.NewFromInt(1249), DurationDays: 10}, "Sharm El Sheikh", "Reef Oasis"},
	}

	for _, entry := range data {
		tour := entry.tour
		tour.CityID = cities[entry.city].ID
		tour.HotelID = hotels[entry.hotel].ID

		var existing model.Tour
		err := gormDB.WithContext(ctx).Where("name = ?", tour.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gormDB.WithContext(ctx).Create(&tour).Error; err != nil {
				log.Fatalf("Failed to seed tour %q: %v", tour.Name, err)
			}
			log.Printf("Created tour %q", tour.Name)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to look up tour %q: %v", tour.Name, err)
		}
	}
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	var existing model.User
	err := gormDB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		log.Printf("Admin user %q already exists", username)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := gormDB.WithContext(ctx).Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %q", username)
}
