package repository

import (
	"context"

	"gorm.io/gorm"

	"tourbook/internal/model"
)

// CityRepository defines city reference-data persistence operations.
type CityRepository interface {
	Create(ctx context.Context, city *model.City) error
	Update(ctx context.Context, city *model.City) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.City, error)
	List(ctx context.Context) ([]model.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository builds a GORM-backed repository.
func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *model.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) Update(ctx context.Context, city *model.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *cityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.City{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cityRepository) FindByID(ctx context.Context, id uint) (*model.City, error) {
	var city model.City
	if err := r.db.WithContext(ctx).First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) List(ctx context.Context) ([]model.City, error) {
	var cities []model.City
	if err := r.db.WithContext(ctx).Order("name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}
