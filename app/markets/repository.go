package markets

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

const pqUniqueViolation = "23505"

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new market repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create persists a market together with its outcomes
func (r *repository) Create(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Create(market).Error
}

// GetByID retrieves a market with its outcomes preloaded
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Preload("Outcomes", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&market, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &market, nil
}

// List retrieves markets matching the filters with a total count
func (r *repository) List(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Market{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.CreatorID != "" {
		query = query.Where("creator_id = ?", filters.CreatorID)
	}
	if filters.CategoryID != "" {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.Search != "" {
		query = query.Where("question ILIKE ?", "%"+filters.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var markets []models.Market
	err := query.
		Preload("Outcomes", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("created_at DESC").
		Limit(filters.PerPage).
		Offset((filters.Page - 1) * filters.PerPage).
		Find(&markets).Error
	if err != nil {
		return nil, 0, err
	}
	return markets, total, nil
}

// UpdateStatusIf performs the conditional status transition guard
func (r *repository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to models.MarketStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Market{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CreateVote records an approval vote. The unique (market_id, user_id)
// index rejects a second vote from the same user.
func (r *repository) CreateVote(ctx context.Context, vote *models.ApprovalVote) error {
	err := r.db.WithContext(ctx).Create(vote).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return models.ErrDuplicateVote
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateVote
		}
		return err
	}
	return nil
}

// CountVotes tallies approvals and rejections for a market
func (r *repository) CountVotes(ctx context.Context, marketID uuid.UUID) (approvals, rejections int64, err error) {
	err = r.db.WithContext(ctx).
		Model(&models.ApprovalVote{}).
		Where("market_id = ? AND vote = ?", marketID, models.VoteApprove).
		Count(&approvals).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).
		Model(&models.ApprovalVote{}).
		Where("market_id = ? AND vote = ?", marketID, models.VoteReject).
		Count(&rejections).Error
	if err != nil {
		return 0, 0, err
	}
	return approvals, rejections, nil
}

// AddToPools adds the amount onto every outcome pool of the market
func (r *repository) AddToPools(ctx context.Context, marketID uuid.UUID, amount decimal.Decimal) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Outcome{}).
		Where("market_id = ?", marketID).
		Update("total_staked", gorm.Expr("total_staked + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByStatus returns market counts grouped by status
func (r *repository) CountByStatus(ctx context.Context) (map[models.MarketStatus]int64, error) {
	type row struct {
		Status models.MarketStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Market{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.MarketStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// CountPredictions returns the total number of predictions on the platform
func (r *repository) CountPredictions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Prediction{}).Count(&count).Error
	return count, err
}

// CountUsers returns the total number of registered users
func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
