package activity

import (
	"context"

	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new activity log repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Insert appends one activity record
func (r *repository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns activity records newest first, with the unpaged total
func (r *repository) List(ctx context.Context, filters ListFilters) ([]models.ActivityLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActivityLog{})

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.ActionType != "" {
		query = query.Where("action_type = ?", filters.ActionType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.ActivityLog
	offset := (filters.Page - 1) * filters.PerPage
	err := query.Order("created_at DESC").
		Limit(filters.PerPage).
		Offset(offset).
		Find(&entries).Error
	return entries, total, err
}
