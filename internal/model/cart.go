package model

import "time"

// Cart is a user's basket. The unique index on UserID is what enforces
// one-cart-per-user under concurrent first adds; the application relies on the
// resulting duplicate-key error, not on a check-then-act lookup.
type Cart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Lines []CartLine `json:"lines,omitempty" gorm:"foreignKey:CartID"`
}

// CartLine joins a cart to a tour with a quantity. The composite unique index
// guarantees at most one line per (cart, tour); repeated adds increment
// Quantity instead of inserting a sibling row.
type CartLine struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CartID    uint      `json:"cart_id" gorm:"not null;uniqueIndex:idx_cart_tour"`
	TourID    uint      `json:"tour_id" gorm:"not null;uniqueIndex:idx_cart_tour"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tour Tour `json:"tour,omitempty" gorm:"foreignKey:TourID"`
}

// TableName keeps the historical table name for the cart join rows.
func (CartLine) TableName() string {
	return "cart_items"
}
