package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Prediction represents a user's staked bet on one outcome of one market.
// StakeAmount is net of the platform fee; the fee is recorded separately
// and is never refunded.
type Prediction struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index:idx_predictions_user" json:"user_id"`
	MarketID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_predictions_market" json:"market_id"`
	OutcomeID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"outcome_id"`
	StakeAmount  decimal.Decimal  `gorm:"type:decimal(20,2);not null;check:stake_amount > 0" json:"stake_amount"`
	FeePaid      decimal.Decimal  `gorm:"type:decimal(20,2);not null;default:0.00" json:"fee_paid"`
	PayoutAmount *decimal.Decimal `gorm:"type:decimal(20,2)" json:"payout_amount"`
	PaidOut      bool             `gorm:"default:false;index" json:"paid_out"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Market  *Market  `gorm:"foreignKey:MarketID" json:"market,omitempty"`
	Outcome *Outcome `gorm:"foreignKey:OutcomeID" json:"outcome,omitempty"`
}

// TableName specifies the table name for Prediction model
func (*Prediction) TableName() string {
	return "predictions"
}

// BeforeCreate sets up the model before creation
func (p *Prediction) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Settle fixes the prediction's payout. Once paid out the amount is
// immutable until a dispute reversal reopens it.
func (p *Prediction) Settle(payout decimal.Decimal) error {
	if p.PaidOut {
		return ErrAlreadyPaidOut
	}
	p.PayoutAmount = &payout
	p.PaidOut = true
	return nil
}

// Reopen undoes a prior settlement so the prediction is reconsidered by a
// dispute re-run. Returns the payout that was previously credited.
func (p *Prediction) Reopen() decimal.Decimal {
	reversed := decimal.Zero
	if p.PayoutAmount != nil {
		reversed = *p.PayoutAmount
	}
	p.PayoutAmount = nil
	p.PaidOut = false
	return reversed
}

// IsWinner reports whether the settled payout exceeded zero.
func (p *Prediction) IsWinner() bool {
	return p.PaidOut && p.PayoutAmount != nil && p.PayoutAmount.GreaterThan(decimal.Zero)
}

// NetReturn is payout minus net stake; zero while unsettled.
func (p *Prediction) NetReturn() decimal.Decimal {
	if !p.PaidOut || p.PayoutAmount == nil {
		return decimal.Zero
	}
	return p.PayoutAmount.Sub(p.StakeAmount)
}

// Validate performs validation on the prediction model
func (p *Prediction) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if p.MarketID == uuid.Nil {
		return ErrInvalidMarketID
	}
	if p.OutcomeID == uuid.Nil {
		return ErrInvalidOutcome
	}
	if p.StakeAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStakeAmount
	}
	if p.FeePaid.LessThan(decimal.Zero) {
		return ErrInvalidStakeAmount
	}
	return nil
}
