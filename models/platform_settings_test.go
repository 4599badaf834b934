package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlatformSettings_Snapshot(t *testing.T) {
	row := PlatformSettings{
		ID:                    1,
		RequiredApprovalVotes: 15,
		ApprovalDeadlineHours: 48,
		DisputeWindowHours:    24,
		PlatformFeePercentage: decimal.NewFromFloat(0.02),
		StartingBalance:       decimal.NewFromInt(250),
	}

	snap := row.Snapshot()
	assert.Equal(t, 15, snap.RequiredApprovalVotes)
	assert.Equal(t, 48*time.Hour, snap.ApprovalDeadline)
	assert.Equal(t, 24*time.Hour, snap.DisputeWindow)
	assert.True(t, decimal.NewFromFloat(0.02).Equal(snap.PlatformFee))
	assert.True(t, decimal.NewFromInt(250).Equal(snap.StartingBalance))

	// Mutating the row afterwards must not affect an already-taken snapshot.
	row.RequiredApprovalVotes = 99
	assert.Equal(t, 15, snap.RequiredApprovalVotes)
}

func TestSnapshot_FeeFor(t *testing.T) {
	snap := Snapshot{PlatformFee: decimal.NewFromFloat(0.01)}

	fee := snap.FeeFor(decimal.NewFromInt(100))
	assert.True(t, decimal.NewFromInt(1).Equal(fee))

	fee = snap.FeeFor(decimal.NewFromFloat(40.50))
	assert.True(t, decimal.RequireFromString("0.405").Equal(fee))

	snap.PlatformFee = decimal.Zero
	assert.True(t, decimal.Zero.Equal(snap.FeeFor(decimal.NewFromInt(100))))
}

func TestPlatformSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultPlatformSettings().Validate())

	tests := []struct {
		name   string
		modify func(*PlatformSettings)
		err    error
	}{
		{"Zero threshold", func(s *PlatformSettings) { s.RequiredApprovalVotes = 0 }, ErrApprovalThresholdZero},
		{"Negative threshold", func(s *PlatformSettings) { s.RequiredApprovalVotes = -1 }, ErrApprovalThresholdZero},
		{"Zero approval deadline", func(s *PlatformSettings) { s.ApprovalDeadlineHours = 0 }, ErrInvalidApprovalDeadline},
		{"Zero dispute window", func(s *PlatformSettings) { s.DisputeWindowHours = 0 }, ErrInvalidDisputeWindow},
		{"Negative fee", func(s *PlatformSettings) { s.PlatformFeePercentage = decimal.NewFromFloat(-0.01) }, ErrInvalidFeePercentage},
		{"Fee of one", func(s *PlatformSettings) { s.PlatformFeePercentage = decimal.NewFromInt(1) }, ErrInvalidFeePercentage},
		{"Negative starting balance", func(s *PlatformSettings) { s.StartingBalance = decimal.NewFromInt(-5) }, ErrInvalidStartingBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := *DefaultPlatformSettings()
			tt.modify(&settings)
			assert.Equal(t, tt.err, settings.Validate())
		})
	}
}

func TestDefaultPlatformSettings(t *testing.T) {
	s := DefaultPlatformSettings()
	assert.Equal(t, 1, s.ID)
	assert.Equal(t, 10, s.RequiredApprovalVotes)
	assert.Equal(t, 72, s.ApprovalDeadlineHours)
	assert.Equal(t, 24, s.DisputeWindowHours)
	assert.True(t, decimal.NewFromFloat(0.01).Equal(s.PlatformFeePercentage))
	assert.True(t, decimal.NewFromInt(100).Equal(s.StartingBalance))
}
