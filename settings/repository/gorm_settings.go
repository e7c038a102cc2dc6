package repository

import (
	"context"
	"errors"

	"github.com/Ophelia-lia/customer-system/entity"
	settingspkg "github.com/Ophelia-lia/customer-system/settings"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepo implements settings.Repository using GORM.
type GormSettingsRepo struct {
	db *gorm.DB
}

func NewGormSettingsRepo(db *gorm.DB) settingspkg.Repository {
	return &GormSettingsRepo{db: db}
}

func (r *GormSettingsRepo) Get(ctx context.Context, key string) (*entity.AppSetting, error) {
	var s entity.AppSetting
	if err := r.db.WithContext(ctx).First(&s, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSettingsRepo) Put(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entity.AppSetting{Key: key, Value: value}).Error
}
