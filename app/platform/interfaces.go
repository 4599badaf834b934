package platform

import (
	"context"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for platform settings data access
type Repository interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Update(ctx context.Context, settings *models.PlatformSettings) error
}

// Service defines the interface for platform settings business logic
type Service interface {
	// Snapshot returns the consistent per-call view of the settings. One
	// operation reads one snapshot; a concurrent admin update never splits
	// a settlement or tally.
	Snapshot(ctx context.Context) (models.Snapshot, error)

	GetSettings(ctx context.Context) (*SettingsResponse, error)
	UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*SettingsResponse, error)
}
