package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/model"
	"tourbook/internal/repository"
)

// CartView is what the cart page renders: the lines with their tours, priced
// at read time, and the derived total.
type CartView struct {
	Lines []CartViewLine  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// CartViewLine is a single rendered cart row.
type CartViewLine struct {
	LineID   uint            `json:"line_id"`
	Tour     model.Tour      `json:"tour"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartService owns cart and cart-line mutation. Per (user, tour) a line is
// either absent or present with quantity >= 1; adds upsert-or-increment,
// removes delete by line id after an ownership check.
type CartService interface {
	AddToCart(ctx context.Context, userID, tourID uint) (*model.CartLine, error)
	RemoveFromCart(ctx context.Context, userID, lineID uint) error
	ViewCart(ctx context.Context, userID uint) (*CartView, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	tourRepo repository.TourRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, tourRepo repository.TourRepository) CartService {
	return &cartService{
		cartRepo: cartRepo,
		tourRepo: tourRepo,
	}
}

// AddToCart puts one unit of a tour into the user's cart, creating the cart
// on first use. A present line is bumped with a relative UPDATE; an absent
// line is inserted with quantity 1. When a concurrent first add wins the
// insert, the duplicate-key error from the (cart_id, tour_id) index routes
// this call back to the increment, so N concurrent adds always end at
// quantity N on a single line.
func (s *cartService) AddToCart(ctx context.Context, userID, tourID uint) (*model.CartLine, error) {
	if _, err := s.tourRepo.FindByID(ctx, tourID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, fmt.Errorf("load tour: %w", err)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		bumped, err := s.cartRepo.IncrementLine(ctx, cart.ID, tourID)
		if err != nil {
			return nil, fmt.Errorf("increment line: %w", err)
		}
		if bumped {
			line, err := s.cartRepo.FindLine(ctx, cart.ID, tourID)
			if err != nil {
				return nil, fmt.Errorf("reload line: %w", err)
			}
			return line, nil
		}

		line := &model.CartLine{CartID: cart.ID, TourID: tourID, Quantity: 1}
		err = s.cartRepo.InsertLine(ctx, line)
		if err == nil {
			return line, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("insert line: %w", err)
		}
		// a concurrent add created the line between the UPDATE and the
		// INSERT; go around and increment it instead
	}

	return nil, fmt.Errorf("add to cart: %w", apperrors.ErrStorage)
}

// RemoveFromCart deletes a line by its own id. A line belonging to another
// user's cart is never deleted; the caller gets ErrForbidden instead.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, lineID uint) error {
	line, err := s.cartRepo.FindLineByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartLineNotFound
		}
		return fmt.Errorf("load line: %w", err)
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the caller has no cart at all, so the line is someone else's
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("load cart: %w", err)
	}
	if line.CartID != cart.ID {
		return apperrors.ErrForbidden
	}

	if err := s.cartRepo.DeleteLine(ctx, line.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCartLineNotFound
		}
		return fmt.Errorf("delete line: %w", err)
	}
	return nil
}

// ViewCart returns the cart contents with the total recomputed from current
// tour prices. A user without a cart gets an empty view, not an error.
func (s *cartService) ViewCart(ctx context.Context, userID uint) (*CartView, error) {
	cart, err := s.cartRepo.FindByUserIDWithLines(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CartView{Lines: []CartViewLine{}, Total: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	view := &CartView{Lines: make([]CartViewLine, 0, len(cart.Lines)), Total: decimal.Zero}
	for _, line := range cart.Lines {
		subtotal := line.Tour.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Lines = append(view.Lines, CartViewLine{
			LineID:   line.ID,
			Tour:     line.Tour,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}
