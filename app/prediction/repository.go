package prediction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new prediction repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create persists a new prediction
func (r *repository) Create(ctx context.Context, prediction *models.Prediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

// GetByID retrieves a prediction by id
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Prediction, error) {
	var prediction models.Prediction
	err := r.db.WithContext(ctx).First(&prediction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &prediction, nil
}

// ListByUser retrieves a user's predictions with a total count
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, filters ListFilters) ([]models.Prediction, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Where("user_id = ?", userID)

	if filters.MarketID != "" {
		query = query.Where("market_id = ?", filters.MarketID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var predictions []models.Prediction
	err := query.
		Order("created_at DESC").
		Limit(filters.PerPage).
		Offset((filters.Page - 1) * filters.PerPage).
		Find(&predictions).Error
	if err != nil {
		return nil, 0, err
	}
	return predictions, total, nil
}

// ListByMarket retrieves every prediction on a market
func (r *repository) ListByMarket(ctx context.Context, marketID uuid.UUID) ([]models.Prediction, error) {
	var predictions []models.Prediction
	err := r.db.WithContext(ctx).
		Where("market_id = ?", marketID).
		Order("created_at ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

// AddStakeToOutcome accumulates a net stake onto the outcome pool
func (r *repository) AddStakeToOutcome(ctx context.Context, outcomeID uuid.UUID, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.Outcome{}).
		Where("id = ?", outcomeID).
		Update("total_staked", gorm.Expr("total_staked + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}
