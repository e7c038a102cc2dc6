package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/Ophelia-lia/customer-system/auth"
	"github.com/Ophelia-lia/customer-system/entity"
)

const tokenTTL = 24 * time.Hour

type authService struct {
	repo   authpkg.Repository
	secret string
}

// NewAuthService constructs an auth.Service signing tokens with the given secret.
func NewAuthService(repo authpkg.Repository, secret string) authpkg.Service {
	return &authService{repo: repo, secret: secret}
}

func (s *authService) Login(ctx context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authpkg.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, authpkg.ErrInvalidCredentials
	}

	p := &authpkg.Principal{Username: user.Username, Role: user.Role}
	token, err := authpkg.SignJWT(s.secret, p, tokenTTL)
	if err != nil {
		return nil, err
	}
	p.Token = token
	return p, nil
}

// Seed upserts the configured accounts. Passwords are rehashed on every start
// so a changed configured password takes effect immediately.
func (s *authService) Seed(ctx context.Context, accounts []authpkg.SeedAccount) error {
	for _, acc := range accounts {
		if acc.Username == "" || acc.Password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user, err := s.repo.GetUserByUsername(ctx, acc.Username)
		if err != nil {
			return err
		}
		if user == nil {
			user = &entity.User{ID: uuid.New(), Username: acc.Username}
		}
		user.PasswordHash = string(hash)
		user.Role = acc.Role
		if err := s.repo.SaveUser(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
