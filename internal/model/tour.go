package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tour represents a catalog entry sold by the agency.
type Tour struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"size:255;not null;index"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	DurationDays int             `json:"duration_days" gorm:"not null"`
	CityID       uint            `json:"city_id" gorm:"not null;index"`
	HotelID      uint            `json:"hotel_id" gorm:"not null;index"`
	ClientID     *uint           `json:"client_id,omitempty" gorm:"index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	City   City    `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Hotel  Hotel   `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}
