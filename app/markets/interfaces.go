package markets

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for market data access
type Repository interface {
	Create(ctx context.Context, market *models.Market) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error)
	List(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error)

	// UpdateStatusIf atomically moves the market from one status to
	// another. It reports false when the market was no longer in the
	// expected status, which callers treat as a lost race.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to models.MarketStatus) (bool, error)

	CreateVote(ctx context.Context, vote *models.ApprovalVote) error
	CountVotes(ctx context.Context, marketID uuid.UUID) (approvals, rejections int64, err error)

	// AddToPools adds the given amount to total_staked on every outcome
	// of the market as a single atomic update.
	AddToPools(ctx context.Context, marketID uuid.UUID, amount decimal.Decimal) (int64, error)

	CountByStatus(ctx context.Context) (map[models.MarketStatus]int64, error)
	CountPredictions(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)

	WithTx(tx *gorm.DB) Repository
}

// CategoryGetter is the slice of the categories module the market
// service needs to validate proposals.
type CategoryGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

// Service defines the interface for market business logic
type Service interface {
	ProposeMarket(ctx context.Context, creatorID uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error)
	GetMarkets(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error)
	GetMarketByID(ctx context.Context, id uuid.UUID) (*MarketResponse, error)
	CastVote(ctx context.Context, marketID, voterID uuid.UUID, req *VoteRequest) (*VoteResponse, error)
}

// AdminService defines the admin-side market lifecycle surface
type AdminService interface {
	ApplyAction(ctx context.Context, adminID, marketID uuid.UUID, action models.MarketAction) (*MarketResponse, error)
	GrantBonus(ctx context.Context, adminID, marketID uuid.UUID, req *BonusRequest) (*MarketResponse, error)
	Stats(ctx context.Context) (*StatsResponse, error)
}
