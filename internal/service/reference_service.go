package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/model"
	"tourbook/internal/repository"
)

// ReferenceService handles the city/hotel/client reference data behind the
// admin forms. Reads are public (tour pages show city and hotel names),
// writes are role-gated at the router.
type ReferenceService interface {
	ListCities(ctx context.Context) ([]model.City, error)
	CreateCity(ctx context.Context, city *model.City) error
	UpdateCity(ctx context.Context, city *model.City) error
	DeleteCity(ctx context.Context, id uint) error

	ListHotels(ctx context.Context) ([]model.Hotel, error)
	CreateHotel(ctx context.Context, hotel *model.Hotel) error
	UpdateHotel(ctx context.Context, hotel *model.Hotel) error
	DeleteHotel(ctx context.Context, id uint) error

	ListClients(ctx context.Context) ([]model.Client, error)
	CreateClient(ctx context.Context, client *model.Client) error
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, id uint) error
}

type referenceService struct {
	cityRepo   repository.CityRepository
	hotelRepo  repository.HotelRepository
	clientRepo repository.ClientRepository
	tourRepo   repository.TourRepository
}

// NewReferenceService creates a new reference-data service.
func NewReferenceService(
	cityRepo repository.CityRepository,
	hotelRepo repository.HotelRepository,
	clientRepo repository.ClientRepository,
	tourRepo repository.TourRepository,
) ReferenceService {
	return &referenceService{
		cityRepo:   cityRepo,
		hotelRepo:  hotelRepo,
		clientRepo: clientRepo,
		tourRepo:   tourRepo,
	}
}

func (s *referenceService) ListCities(ctx context.Context) ([]model.City, error) {
	return s.cityRepo.List(ctx)
}

func (s *referenceService) CreateCity(ctx context.Context, city *model.City) error {
	if city.Name == "" {
		return apperrors.ErrInvalidInput
	}
	return s.cityRepo.Create(ctx, city)
}

func (s *referenceService) UpdateCity(ctx context.Context, city *model.City) error {
	if city.Name == "" {
		return apperrors.ErrInvalidInput
	}
	if _, err := s.cityRepo.FindByID(ctx, city.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return s.cityRepo.Update(ctx, city)
}

// DeleteCity refuses when tours or hotels still point at the city.
func (s *referenceService) DeleteCity(ctx context.Context, id uint) error {
	n, err := s.tourRepo.CountByCity(ctx, id)
	if err != nil {
		return fmt.Errorf("count tours: %w", err)
	}
	if n > 0 {
		return apperrors.ErrReferenced
	}
	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list hotels: %w", err)
	}
	for _, h := range hotels {
		if h.CityID == id {
			return apperrors.ErrReferenced
		}
	}
	if err := s.cityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *referenceService) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	return s.hotelRepo.List(ctx)
}

func (s *referenceService) CreateHotel(ctx context.Context, hotel *model.Hotel) error {
	if err := s.validateHotel(ctx, hotel); err != nil {
		return err
	}
	return s.hotelRepo.Create(ctx, hotel)
}

func (s *referenceService) UpdateHotel(ctx context.Context, hotel *model.Hotel) error {
	if err := s.validateHotel(ctx, hotel); err != nil {
		return err
	}
	if _, err := s.hotelRepo.FindByID(ctx, hotel.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return s.hotelRepo.Update(ctx, hotel)
}

func (s *referenceService) DeleteHotel(ctx context.Context, id uint) error {
	n, err := s.tourRepo.CountByHotel(ctx, id)
	if err != nil {
		return fmt.Errorf("count tours: %w", err)
	}
	if n > 0 {
		return apperrors.ErrReferenced
	}
	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *referenceService) validateHotel(ctx context.Context, hotel *model.Hotel) error {
	if hotel.Name == "" || hotel.Stars < 1 || hotel.Stars > 5 {
		return apperrors.ErrInvalidInput
	}
	if _, err := s.cityRepo.FindByID(ctx, hotel.CityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *referenceService) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *referenceService) CreateClient(ctx context.Context, client *model.Client) error {
	if client.FullName == "" || client.Email == "" {
		return apperrors.ErrInvalidInput
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *referenceService) UpdateClient(ctx context.Context, client *model.Client) error {
	if client.FullName == "" || client.Email == "" {
		return apperrors.ErrInvalidInput
	}
	if _, err := s.clientRepo.FindByID(ctx, client.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *referenceService) DeleteClient(ctx context.Context, id uint) error {
	n, err := s.tourRepo.CountByClient(ctx, id)
	if err != nil {
		return fmt.Errorf("count tours: %w", err)
	}
	if n > 0 {
		return apperrors.ErrReferenced
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordNotFound
		}
		return err
	}
	return nil
}
