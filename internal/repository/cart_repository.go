package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tourbook/internal/model"
)

// CartRepository defines cart persistence operations. The mutating primitives
// are deliberately small and atomic; the unique indexes on carts.user_id and
// cart_lines(cart_id, tour_id) are the serialization points, and the service
// layer converts the resulting duplicate-key errors into retries.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	FindByUserIDWithLines(ctx context.Context, userID uint) (*model.Cart, error)
	// IncrementLine bumps the quantity of an existing (cart, tour) line by one
	// in a single UPDATE and reports whether such a line existed.
	IncrementLine(ctx context.Context, cartID, tourID uint) (bool, error)
	InsertLine(ctx context.Context, line *model.CartLine) error
	FindLine(ctx context.Context, cartID, tourID uint) (*model.CartLine, error)
	FindLineByID(ctx context.Context, lineID uint) (*model.CartLine, error)
	DeleteLine(ctx context.Context, lineID uint) error
	CountLinesByTour(ctx context.Context, tourID uint) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository builds a GORM-backed repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// GetOrCreate returns the user's cart, creating it on first use. Two
// concurrent first adds both try the INSERT; the loser hits the unique index
// on user_id and falls back to fetching the winner's row.
func (r *cartRepository) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = model.Cart{UserID: userID}
	err = r.db.WithContext(ctx).Create(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// lost the race; the row exists now
	var existing model.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindByUserIDWithLines(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Lines.Tour").
		Preload("Lines.Tour.City").
		Preload("Lines.Tour.Hotel").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// IncrementLine never reads the quantity into the application: the relative
// UPDATE keeps concurrent adds from both writing q+1 over each other.
func (r *cartRepository) IncrementLine(ctx context.Context, cartID, tourID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.CartLine{}).
		Where("cart_id = ? AND tour_id = ?", cartID, tourID).
		Update("quantity", gorm.Expr("quantity + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *cartRepository) InsertLine(ctx context.Context, line *model.CartLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *cartRepository) FindLine(ctx context.Context, cartID, tourID uint) (*model.CartLine, error) {
	var line model.CartLine
	if err := r.db.WithContext(ctx).
		Where("cart_id = ? AND tour_id = ?", cartID, tourID).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) FindLineByID(ctx context.Context, lineID uint) (*model.CartLine, error) {
	var line model.CartLine
	if err := r.db.WithContext(ctx).First(&line, lineID).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) CountLinesByTour(ctx context.Context, tourID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CartLine{}).Where("tour_id = ?", tourID).Count(&n).Error
	return n, err
}

func (r *cartRepository) DeleteLine(ctx context.Context, lineID uint) error {
	res := r.db.WithContext(ctx).Delete(&model.CartLine{}, lineID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
