package activity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for activity log data access
type Repository interface {
	Insert(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, filters ListFilters) ([]models.ActivityLog, int64, error)

	// WithTx returns a repository bound to the given transaction so a
	// record lands in the same commit as the operation it describes.
	WithTx(tx *gorm.DB) Repository
}

// Recorder is the write-side surface other modules depend on.
type Recorder interface {
	Record(ctx context.Context, userID uuid.UUID, actionType string, targetID uuid.UUID, details models.ActivityDetails) error
	RecordTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, actionType string, targetID uuid.UUID, details models.ActivityDetails) error
}

// Service defines the interface for activity log business logic
type Service interface {
	Recorder
	List(ctx context.Context, filters ListFilters) (*ListResponse, error)
}
