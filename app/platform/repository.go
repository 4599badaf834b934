package platform

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new platform settings repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get returns the singleton settings row, seeding the defaults when the
// table is empty.
func (r *repository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultPlatformSettings()
		if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update persists the settings row
func (r *repository) Update(ctx context.Context, settings *models.PlatformSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
