package model

import "time"

// Role values stored on User.Role.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;default:'client'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may reach administrative routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
