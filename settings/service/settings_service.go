package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Ophelia-lia/customer-system/entity"
	settingspkg "github.com/Ophelia-lia/customer-system/settings"
)

// settingsService implements settings.Service.
type settingsService struct {
	repo settingspkg.Repository
}

// NewSettingsService constructs a settings.Service backed by the provided repository.
func NewSettingsService(repo settingspkg.Repository) settingspkg.Service {
	return &settingsService{repo: repo}
}

func (s *settingsService) Load(ctx context.Context) (json.RawMessage, int, error) {
	appSettings := json.RawMessage(settingspkg.DefaultAppSettings)
	if slot, err := s.repo.Get(ctx, entity.SettingAppSettings); err != nil {
		return nil, 0, err
	} else if slot != nil {
		appSettings = json.RawMessage(slot.Value)
	}

	nextID := settingspkg.DefaultNextCustomerID
	if slot, err := s.repo.Get(ctx, entity.SettingNextCustomerID); err != nil {
		return nil, 0, err
	} else if slot != nil {
		if n, err := strconv.Atoi(slot.Value); err == nil {
			nextID = n
		}
	}
	return appSettings, nextID, nil
}

func (s *settingsService) Update(ctx context.Context, appSettings json.RawMessage, nextID *int) error {
	if appSettings != nil {
		if err := s.repo.Put(ctx, entity.SettingAppSettings, string(appSettings)); err != nil {
			return err
		}
	}
	if nextID != nil {
		if err := s.repo.Put(ctx, entity.SettingNextCustomerID, strconv.Itoa(*nextID)); err != nil {
			return err
		}
	}
	return nil
}
