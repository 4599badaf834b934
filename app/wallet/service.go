package wallet

import (
	"context"

	"github.com/joefazee/agora/models"
)

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new wallet service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// GetWallet assembles the user's points position: the spendable balance
// plus what is riding on open markets and the lifetime aggregates. Net
// profit is winnings minus everything ever staked, fees included.
func (s *service) GetWallet(ctx context.Context, user *models.User) (*WalletResponse, error) {
	totals, err := s.repo.GetTotals(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.GetActiveStake(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	spent := totals.TotalStaked.Add(totals.TotalFees)
	return &WalletResponse{
		PointsBalance:    user.PointsBalance,
		ActiveStake:      active.Amount,
		OpenPredictions:  active.Count,
		LifetimeStaked:   totals.TotalStaked,
		LifetimeWinnings: totals.TotalWinnings,
		LifetimeFees:     totals.TotalFees,
		NetProfit:        totals.TotalWinnings.Sub(spent),
		TotalPredictions: totals.Predictions,
	}, nil
}
