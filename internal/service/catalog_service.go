package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourbook/internal/cache"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/model"
	"tourbook/internal/repository"
)

const tourCacheTTL = 5 * time.Minute

// TourInput carries the admin-editable fields of a tour.
type TourInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	DurationDays int
	CityID       uint
	HotelID      uint
	ClientID     *uint
}

// CatalogService exposes tour reads for browsing and the cart, plus the
// admin-only tour CRUD.
type CatalogService interface {
	GetTour(ctx context.Context, id uint) (*model.Tour, error)
	ListTours(ctx context.Context) ([]model.Tour, error)
	CreateTour(ctx context.Context, in TourInput) (*model.Tour, error)
	UpdateTour(ctx context.Context, id uint, in TourInput) (*model.Tour, error)
	DeleteTour(ctx context.Context, id uint) error
}

type catalogService struct {
	tourRepo   repository.TourRepository
	cityRepo   repository.CityRepository
	hotelRepo  repository.HotelRepository
	clientRepo repository.ClientRepository
	cartRepo   repository.CartRepository
	cache      *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	tourRepo repository.TourRepository,
	cityRepo repository.CityRepository,
	hotelRepo repository.HotelRepository,
	clientRepo repository.ClientRepository,
	cartRepo repository.CartRepository,
	cache *cache.Client,
) CatalogService {
	return &catalogService{
		tourRepo:   tourRepo,
		cityRepo:   cityRepo,
		hotelRepo:  hotelRepo,
		clientRepo: clientRepo,
		cartRepo:   cartRepo,
		cache:      cache,
	}
}

func (s *catalogService) cacheKey(id uint) string {
	return fmt.Sprintf("tour:%d", id)
}

// GetTour retrieves a tour by ID with caching. The cache TTL bounds how stale
// a browsing page can be; cart totals bypass this path and read live prices.
func (s *catalogService) GetTour(ctx context.Context, id uint) (*model.Tour, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Tour
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	tour, err := s.tourRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(tour); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, tourCacheTTL)
	}

	return tour, nil
}

func (s *catalogService) ListTours(ctx context.Context) ([]model.Tour, error) {
	return s.tourRepo.List(ctx)
}

// CreateTour validates the references and inserts the tour. Dangling city,
// hotel or client ids are rejected up front.
func (s *catalogService) CreateTour(ctx context.Context, in TourInput) (*model.Tour, error) {
	if err := s.validateTourInput(ctx, in); err != nil {
		return nil, err
	}

	tour := &model.Tour{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		DurationDays: in.DurationDays,
		CityID:       in.CityID,
		HotelID:      in.HotelID,
		ClientID:     in.ClientID,
	}
	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}
	return tour, nil
}

func (s *catalogService) UpdateTour(ctx context.Context, id uint, in TourInput) (*model.Tour, error) {
	tour, err := s.tourRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, fmt.Errorf("load tour: %w", err)
	}

	if err := s.validateTourInput(ctx, in); err != nil {
		return nil, err
	}

	tour.Name = in.Name
	tour.Description = in.Description
	tour.Price = in.Price
	tour.DurationDays = in.DurationDays
	tour.CityID = in.CityID
	tour.HotelID = in.HotelID
	tour.ClientID = in.ClientID
	if err := s.tourRepo.Update(ctx, tour); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return tour, nil
}

// DeleteTour refuses to delete a tour that still sits in someone's cart;
// cart lines must never dangle.
func (s *catalogService) DeleteTour(ctx context.Context, id uint) error {
	n, err := s.cartRepo.CountLinesByTour(ctx, id)
	if err != nil {
		return fmt.Errorf("count cart lines: %w", err)
	}
	if n > 0 {
		return apperrors.ErrReferenced
	}

	if err := s.tourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTourNotFound
		}
		return fmt.Errorf("delete tour: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *catalogService) validateTourInput(ctx context.Context, in TourInput) error {
	if in.Name == "" || in.Price.IsNegative() || in.DurationDays <= 0 {
		return apperrors.ErrInvalidInput
	}
	if _, err := s.cityRepo.FindByID(ctx, in.CityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return fmt.Errorf("load city: %w", err)
	}
	if _, err := s.hotelRepo.FindByID(ctx, in.HotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return fmt.Errorf("load hotel: %w", err)
	}
	if in.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *in.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRecordNotFound
			}
			return fmt.Errorf("load client: %w", err)
		}
	}
	return nil
}
