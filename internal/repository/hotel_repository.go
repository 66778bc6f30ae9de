package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/model"
)

// HotelRepository defines hotel reference-data persistence operations.
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, hotel *model.Hotel) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository builds a GORM-backed repository.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) Update(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *hotelRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Hotel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uint) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := r.db.WithContext(ctx).Preload("City").First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	if err := r.db.WithContext(ctx).Preload("City").Order("name").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}
