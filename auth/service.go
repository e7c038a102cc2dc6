package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned on unknown username or wrong password.
// Deliberately one error for both cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginRequest carries the credentials for a password login.
type LoginRequest struct {
	Username string
	Password string
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
}

// SeedAccount describes one account to ensure at startup.
type SeedAccount struct {
	Username string
	Password string
	Role     string
}

// Service provides login and account seeding.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Principal, error)

	// Seed ensures the given accounts exist with the given role and password.
	// Existing accounts are updated, others are created.
	Seed(ctx context.Context, accounts []SeedAccount) error
}
