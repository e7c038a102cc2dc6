package entity

import (
	"time"

	"github.com/google/uuid"
)

// Roles understood by the authorization middleware.
const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

// User is a login account. Accounts are seeded from configuration at startup;
// there is no self-registration.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	Role         string    `json:"role" gorm:"type:text;not null;default:'reader'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
