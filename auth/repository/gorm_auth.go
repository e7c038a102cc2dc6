package repository

import (
	"context"
	"errors"

	authpkg "github.com/Ophelia-lia/customer-system/auth"
	"github.com/Ophelia-lia/customer-system/entity"
	"gorm.io/gorm"
)

// GormAuthRepo implements auth.Repository using GORM.
type GormAuthRepo struct {
	db *gorm.DB
}

func NewGormAuthRepo(db *gorm.DB) authpkg.Repository {
	return &GormAuthRepo{db: db}
}

func (r *GormAuthRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormAuthRepo) SaveUser(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
