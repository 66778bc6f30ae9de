package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/model"
)

// TourRepository defines catalog persistence operations.
type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) error
	Update(ctx context.Context, tour *model.Tour) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Tour, error)
	List(ctx context.Context) ([]model.Tour, error)
	CountByCity(ctx context.Context, cityID uint) (int64, error)
	CountByHotel(ctx context.Context, hotelID uint) (int64, error)
	CountByClient(ctx context.Context, clientID uint) (int64, error)
}

type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository builds a GORM-backed repository.
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) Update(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

func (r *tourRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Tour{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uint) (*model.Tour, error) {
	var tour model.Tour
	if err := r.db.WithContext(ctx).
		Preload("City").Preload("Hotel").Preload("Client").
		First(&tour, id).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) List(ctx context.Context) ([]model.Tour, error) {
	var tours []model.Tour
	if err := r.db.WithContext(ctx).
		Preload("City").Preload("Hotel").
		Order("id").Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) CountByCity(ctx context.Context, cityID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tour{}).Where("city_id = ?", cityID).Count(&n).Error
	return n, err
}

func (r *tourRepository) CountByHotel(ctx context.Context, hotelID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tour{}).Where("hotel_id = ?", hotelID).Count(&n).Error
	return n, err
}

func (r *tourRepository) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tour{}).Where("client_id = ?", clientID).Count(&n).Error
	return n, err
}
