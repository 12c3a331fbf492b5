package services

import (
	"context"
	"errors"
	"time"

	"stayflow/backoffice/internal/common"
	"stayflow/backoffice/internal/constants"
	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

const settingsCacheTTL = 5 * time.Minute

// SettingsService loads the singleton configuration row once and hands it to
// callers, instead of letting request paths query it ad hoc.
type SettingsService struct {
	db    *gormlib.DB
	cache common.CacheInterface
}

// NewSettingsService creates a new settings service
func NewSettingsService(db *gormlib.DB, cache common.CacheInterface) *SettingsService {
	return &SettingsService{db: db, cache: cache}
}

// Get returns the settings row, creating a default one on first use
func (s *SettingsService) Get(ctx context.Context) (*models.AppSetting, error) {
	key := string(constants.CachePrefixSettings) + "singleton"

	val, err := s.cache.GetOrSet(key, settingsCacheTTL, func() (any, error) {
		var setting models.AppSetting

		err := s.db.WithContext(ctx).First(&setting).Error
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			setting = models.AppSetting{Currency: "EUR"}
			if err := s.db.WithContext(ctx).Create(&setting).Error; err != nil {
				return nil, err
			}
			return &setting, nil
		}
		if err != nil {
			return nil, err
		}
		return &setting, nil
	})
	if err != nil {
		return nil, err
	}

	return val.(*models.AppSetting), nil
}

// Update writes the settings row and drops the cached copy
func (s *SettingsService) Update(ctx context.Context, setting *models.AppSetting) error {
	if err := s.db.WithContext(ctx).Save(setting).Error; err != nil {
		return err
	}

	s.cache.Delete(string(constants.CachePrefixSettings) + "singleton")
	return nil
}
