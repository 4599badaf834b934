package wallet

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new wallet repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetTotals aggregates the user's lifetime staking history
func (r *repository) GetTotals(ctx context.Context, userID uuid.UUID) (*Totals, error) {
	var totals Totals
	err := r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Select(`COALESCE(SUM(stake_amount), 0) as total_staked,
			COALESCE(SUM(fee_paid), 0) as total_fees,
			COALESCE(SUM(payout_amount), 0) as total_winnings,
			COUNT(*) as predictions`).
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// GetActiveStake sums the stakes still riding on unsettled markets
func (r *repository) GetActiveStake(ctx context.Context, userID uuid.UUID) (*ActiveStake, error) {
	var active ActiveStake
	err := r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Select("COALESCE(SUM(predictions.stake_amount), 0) as amount, COUNT(*) as count").
		Joins("JOIN markets ON markets.id = predictions.market_id").
		Where("predictions.user_id = ? AND predictions.paid_out = ?", userID, false).
		Where("markets.status IN ?", []models.MarketStatus{
			models.MarketStatusLive,
			models.MarketStatusClosed,
			models.MarketStatusResolved,
			models.MarketStatusDisputed,
		}).
		Scan(&active).Error
	if err != nil {
		return nil, err
	}
	return &active, nil
}
