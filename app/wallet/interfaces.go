package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for wallet data access
type Repository interface {
	// GetTotals aggregates a user's staking history in one pass.
	GetTotals(ctx context.Context, userID uuid.UUID) (*Totals, error)
	// GetActiveStake sums the stakes still riding on unsettled markets.
	GetActiveStake(ctx context.Context, userID uuid.UUID) (*ActiveStake, error)
}

// Service defines the interface for wallet business logic
type Service interface {
	GetWallet(ctx context.Context, user *models.User) (*WalletResponse, error)
}
