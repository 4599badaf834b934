package prediction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for prediction data access
type Repository interface {
	Create(ctx context.Context, prediction *models.Prediction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Prediction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filters ListFilters) ([]models.Prediction, int64, error)
	ListByMarket(ctx context.Context, marketID uuid.UUID) ([]models.Prediction, error)

	// AddStakeToOutcome accumulates a net stake onto the outcome pool as
	// an atomic SQL increment.
	AddStakeToOutcome(ctx context.Context, outcomeID uuid.UUID, amount decimal.Decimal) error

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for prediction business logic
type Service interface {
	PlaceStake(ctx context.Context, userID uuid.UUID, req *PlaceStakeRequest) (*Response, error)
	GetMyPredictions(ctx context.Context, userID uuid.UUID, filters ListFilters) (*ListResponse, error)
	GetMarketPredictions(ctx context.Context, marketID uuid.UUID) ([]Response, error)
}
