package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/agora/app/wallet"
)

// MockWalletRepository mocks the wallet repository.
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetTotals(ctx context.Context, userID uuid.UUID) (*wallet.Totals, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Totals), args.Error(1)
}

func (m *MockWalletRepository) GetActiveStake(ctx context.Context, userID uuid.UUID) (*wallet.ActiveStake, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.ActiveStake), args.Error(1)
}
