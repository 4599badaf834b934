package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for settlement data access
type Repository interface {
	// ResolveIf atomically moves the market from closed to resolved,
	// recording the winner and resolution metadata in the same update.
	// It reports false when the market was no longer closed.
	ResolveIf(ctx context.Context, marketID, winningOutcomeID, resolvedBy uuid.UUID, reason string, at time.Time) (bool, error)

	// UpdateStatusIf is the conditional market status guard.
	UpdateStatusIf(ctx context.Context, marketID uuid.UUID, from, to models.MarketStatus) (bool, error)

	// FinalizeMarket moves a disputed market to final, optionally
	// replacing the winning outcome when a dispute was overturned.
	FinalizeMarket(ctx context.Context, marketID uuid.UUID, newWinningOutcomeID *uuid.UUID) (bool, error)

	SavePrediction(ctx context.Context, prediction *models.Prediction) error

	// AdjustUserBalance applies a signed delta with no floor guard.
	// Dispute reversal may push a balance transiently negative when a
	// winner has already spent the reversed payout.
	AdjustUserBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) error

	CreateDispute(ctx context.Context, dispute *models.Dispute) error
	GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error)
	ListDisputes(ctx context.Context, filters DisputeFilters) ([]models.Dispute, int64, error)

	// DecideDisputeIf atomically moves the dispute from pending to its
	// terminal status. It reports false when the dispute was already
	// decided.
	DecideDisputeIf(ctx context.Context, disputeID uuid.UUID, decision models.DisputeDecision, note string, deciderID uuid.UUID, at time.Time) (bool, error)

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for settlement business logic
type Service interface {
	ResolveMarket(ctx context.Context, resolverID, marketID uuid.UUID, req *ResolveRequest) (*ResolutionResponse, error)
	FileDispute(ctx context.Context, userID, marketID uuid.UUID, req *FileDisputeRequest) (*DisputeResponse, error)
	DecideDispute(ctx context.Context, adminID, disputeID uuid.UUID, req *DecideDisputeRequest) (*DisputeResponse, error)
	ListDisputes(ctx context.Context, filters DisputeFilters) (*DisputeListResponse, error)
}
