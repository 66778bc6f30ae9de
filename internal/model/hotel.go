package model

import "time"

// Hotel is a reference record tours point at.
type Hotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Stars     int       `json:"stars" gorm:"not null;default:3"`
	CityID    uint      `json:"city_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	City City `json:"city,omitempty" gorm:"foreignKey:CityID"`
}
