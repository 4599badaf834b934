package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformSettings is the singleton configuration row. Settlement and
// staking code never reads it directly; callers take a Snapshot and pass
// that by value so one operation sees one consistent configuration.
type PlatformSettings struct {
	ID                    int             `gorm:"primary_key" json:"id"`
	RequiredApprovalVotes int             `gorm:"not null;default:10" json:"required_approval_votes"`
	ApprovalDeadlineHours int             `gorm:"not null;default:72" json:"approval_deadline_hours"`
	DisputeWindowHours    int             `gorm:"not null;default:24" json:"dispute_window_hours"`
	PlatformFeePercentage decimal.Decimal `gorm:"type:decimal(5,4);not null;default:0.0100" json:"platform_fee_percentage"`
	StartingBalance       decimal.Decimal `gorm:"type:decimal(20,2);not null;default:100.00" json:"starting_balance"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for PlatformSettings model
func (*PlatformSettings) TableName() string {
	return "platform_settings"
}

// Snapshot is the immutable per-call view of the platform settings.
type Snapshot struct {
	RequiredApprovalVotes int
	ApprovalDeadline      time.Duration
	DisputeWindow         time.Duration
	PlatformFee           decimal.Decimal
	StartingBalance       decimal.Decimal
}

// Snapshot converts the stored row into the value object handed to
// settlement, staking and tally calls.
func (s *PlatformSettings) Snapshot() Snapshot {
	return Snapshot{
		RequiredApprovalVotes: s.RequiredApprovalVotes,
		ApprovalDeadline:      time.Duration(s.ApprovalDeadlineHours) * time.Hour,
		DisputeWindow:         time.Duration(s.DisputeWindowHours) * time.Hour,
		PlatformFee:           s.PlatformFeePercentage,
		StartingBalance:       s.StartingBalance,
	}
}

// FeeFor returns the platform fee charged on a gross stake.
func (s Snapshot) FeeFor(stake decimal.Decimal) decimal.Decimal {
	return stake.Mul(s.PlatformFee)
}

// Validate performs validation on the platform settings model
func (s *PlatformSettings) Validate() error {
	if s.RequiredApprovalVotes <= 0 {
		return ErrApprovalThresholdZero
	}
	if s.ApprovalDeadlineHours <= 0 {
		return ErrInvalidApprovalDeadline
	}
	if s.DisputeWindowHours <= 0 {
		return ErrInvalidDisputeWindow
	}
	if s.PlatformFeePercentage.LessThan(decimal.Zero) ||
		s.PlatformFeePercentage.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return ErrInvalidFeePercentage
	}
	if s.StartingBalance.LessThan(decimal.Zero) {
		return ErrInvalidStartingBalance
	}
	return nil
}

// DefaultPlatformSettings returns the seed configuration row.
func DefaultPlatformSettings() *PlatformSettings {
	return &PlatformSettings{
		ID:                    1,
		RequiredApprovalVotes: 10,
		ApprovalDeadlineHours: 72,
		DisputeWindowHours:    24,
		PlatformFeePercentage: decimal.NewFromFloat(0.01),
		StartingBalance:       decimal.NewFromInt(100),
	}
}
