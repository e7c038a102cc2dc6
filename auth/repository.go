package auth

import (
	"context"

	"github.com/Ophelia-lia/customer-system/entity"
)

// Repository exposes the user table operations used for authentication.
type Repository interface {
	// GetUserByUsername returns nil without error when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)

	SaveUser(ctx context.Context, u *entity.User) error
}
