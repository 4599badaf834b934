package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrediction_SettleAndReopen(t *testing.T) {
	p := Prediction{
		UserID:      uuid.New(),
		MarketID:    uuid.New(),
		OutcomeID:   uuid.New(),
		StakeAmount: decimal.NewFromInt(40),
	}

	payout := decimal.RequireFromString("57.14")
	assert.NoError(t, p.Settle(payout))
	assert.True(t, p.PaidOut)
	assert.True(t, payout.Equal(*p.PayoutAmount))
	assert.True(t, p.IsWinner())

	// Settled amount is fixed until a dispute reopens it.
	assert.ErrorIs(t, p.Settle(decimal.NewFromInt(999)), ErrAlreadyPaidOut)

	reversed := p.Reopen()
	assert.True(t, payout.Equal(reversed))
	assert.False(t, p.PaidOut)
	assert.Nil(t, p.PayoutAmount)
	assert.False(t, p.IsWinner())

	// Losers reopen too so a re-run reconsiders them; the reversed amount
	// is simply zero.
	loser := Prediction{StakeAmount: decimal.NewFromInt(10)}
	assert.NoError(t, loser.Settle(decimal.Zero))
	assert.True(t, decimal.Zero.Equal(loser.Reopen()))
	assert.False(t, loser.PaidOut)
}

func TestPrediction_NetReturn(t *testing.T) {
	p := Prediction{StakeAmount: decimal.NewFromInt(40)}
	assert.True(t, decimal.Zero.Equal(p.NetReturn()), "unsettled")

	assert.NoError(t, p.Settle(decimal.NewFromInt(55)))
	assert.True(t, decimal.NewFromInt(15).Equal(p.NetReturn()))
}

func TestPrediction_Validate(t *testing.T) {
	valid := Prediction{
		UserID:      uuid.New(),
		MarketID:    uuid.New(),
		OutcomeID:   uuid.New(),
		StakeAmount: decimal.NewFromInt(10),
		FeePaid:     decimal.RequireFromString("0.10"),
	}
	assert.NoError(t, valid.Validate())

	zeroStake := valid
	zeroStake.StakeAmount = decimal.Zero
	assert.ErrorIs(t, zeroStake.Validate(), ErrInvalidStakeAmount)

	negFee := valid
	negFee.FeePaid = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negFee.Validate(), ErrInvalidStakeAmount)

	noOutcome := valid
	noOutcome.OutcomeID = uuid.Nil
	assert.ErrorIs(t, noOutcome.Validate(), ErrInvalidOutcome)
}
