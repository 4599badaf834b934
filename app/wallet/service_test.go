package wallet_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/agora/app/wallet"
	"github.com/joefazee/agora/models"
	"github.com/joefazee/agora/tests/mocks"
)

func TestService_GetWallet(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockWalletRepository)
	svc := wallet.NewService(repo)

	user := &models.User{
		ID:            uuid.New(),
		Username:      "amina",
		PointsBalance: decimal.NewFromInt(420),
	}

	repo.On("GetTotals", ctx, user.ID).Return(&wallet.Totals{
		TotalStaked:   decimal.NewFromInt(300),
		TotalFees:     decimal.NewFromInt(3),
		TotalWinnings: decimal.NewFromInt(450),
		Predictions:   12,
	}, nil)
	repo.On("GetActiveStake", ctx, user.ID).Return(&wallet.ActiveStake{
		Amount: decimal.NewFromInt(80),
		Count:  2,
	}, nil)

	resp, err := svc.GetWallet(ctx, user)
	require.NoError(t, err)

	assert.True(t, resp.PointsBalance.Equal(decimal.NewFromInt(420)))
	assert.True(t, resp.ActiveStake.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, int64(2), resp.OpenPredictions)
	assert.True(t, resp.LifetimeWinnings.Equal(decimal.NewFromInt(450)))
	// 450 won against 303 ever spent.
	assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(147)), "got %s", resp.NetProfit)
	assert.Equal(t, int64(12), resp.TotalPredictions)
}
