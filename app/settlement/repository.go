package settlement

import (
	"context"
	"errors"
	"time"

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

// NewRepository creates a new settlement repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// ResolveIf performs the closed-to-resolved transition together with the
// resolution metadata as one conditional update
func (r *repository) ResolveIf(ctx context.Context, marketID, winningOutcomeID, resolvedBy uuid.UUID, reason string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Market{}).
		Where("id = ? AND status = ?", marketID, models.MarketStatusClosed).
		Updates(map[string]interface{}{
			"status":             models.MarketStatusResolved,
			"winning_outcome_id": winningOutcomeID,
			"resolved_by_id":     resolvedBy,
			"resolution_reason":  reason,
			"resolution_time":    at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateStatusIf performs the conditional status transition guard
func (r *repository) UpdateStatusIf(ctx context.Context, marketID uuid.UUID, from, to models.MarketStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Market{}).
		Where("id = ? AND status = ?", marketID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FinalizeMarket moves a disputed market to final, optionally swapping
// in the new winning outcome
func (r *repository) FinalizeMarket(ctx context.Context, marketID uuid.UUID, newWinningOutcomeID *uuid.UUID) (bool, error) {
	fields := map[string]interface{}{
		"status": models.MarketStatusFinal,
	}
	if newWinningOutcomeID != nil {
		fields["winning_outcome_id"] = *newWinningOutcomeID
	}

	result := r.db.WithContext(ctx).
		Model(&models.Market{}).
		Where("id = ? AND status = ?", marketID, models.MarketStatusDisputed).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SavePrediction persists a prediction's settlement fields
func (r *repository) SavePrediction(ctx context.Context, prediction *models.Prediction) error {
	return r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Where("id = ?", prediction.ID).
		Updates(map[string]interface{}{
			"payout_amount": prediction.PayoutAmount,
			"paid_out":      prediction.PaidOut,
		}).Error
}

// AdjustUserBalance applies a signed delta to the user's balance with no
// floor guard
func (r *repository) AdjustUserBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("points_balance", gorm.Expr("points_balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}

// CreateDispute records a dispute. The unique (market_id, initiated_by)
// index rejects a second filing from the same user.
func (r *repository) CreateDispute(ctx context.Context, dispute *models.Dispute) error {
	err := r.db.WithContext(ctx).Create(dispute).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return models.ErrDuplicateDispute
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateDispute
		}
		return err
	}
	return nil
}

// GetDisputeByID retrieves a dispute by id
func (r *repository) GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	var dispute models.Dispute
	err := r.db.WithContext(ctx).First(&dispute, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dispute, nil
}

// ListDisputes retrieves disputes matching the filters with a total count
func (r *repository) ListDisputes(ctx context.Context, filters DisputeFilters) ([]models.Dispute, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Dispute{})

	if filters.MarketID != "" {
		query = query.Where("market_id = ?", filters.MarketID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var disputes []models.Dispute
	err := query.
		Order("created_at DESC").
		Limit(filters.PerPage).
		Offset((filters.Page - 1) * filters.PerPage).
		Find(&disputes).Error
	if err != nil {
		return nil, 0, err
	}
	return disputes, total, nil
}

// DecideDisputeIf performs the pending-to-terminal dispute transition as
// one conditional update
func (r *repository) DecideDisputeIf(ctx context.Context, disputeID uuid.UUID, decision models.DisputeDecision, note string, deciderID uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Dispute{}).
		Where("id = ? AND status = ?", disputeID, models.DisputeStatusPending).
		Updates(map[string]interface{}{
			"status":         models.DisputeStatus(decision),
			"admin_decision": note,
			"decided_by_id":  deciderID,
			"resolved_at":    at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
