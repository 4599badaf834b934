package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Outcome represents one possible resolution of a market
type Outcome struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MarketID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_outcomes_market" json:"market_id"`
	OutcomeText string          `gorm:"type:varchar(100);not null" json:"outcome_text"`
	OrderIndex  int             `gorm:"default:0" json:"order_index"`
	TotalStaked decimal.Decimal `gorm:"type:decimal(20,2);default:0.00" json:"total_staked"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Market      *Market      `gorm:"foreignKey:MarketID;constraint:OnDelete:CASCADE" json:"market,omitempty"`
	Predictions []Prediction `gorm:"foreignKey:OutcomeID" json:"-"`
}

// TableName specifies the table name for Outcome model
func (*Outcome) TableName() string {
	return "outcomes"
}

// BeforeCreate sets up the model before creation
func (o *Outcome) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// AddStake accumulates a net stake onto this outcome's pool
func (o *Outcome) AddStake(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidStakeAmount
	}
	o.TotalStaked = o.TotalStaked.Add(amount)
	return nil
}

// ShareOf returns stake/TotalStaked, the proportional share a stake holds
// of this outcome's pool. Zero when the pool is empty.
func (o *Outcome) ShareOf(stake decimal.Decimal) decimal.Decimal {
	if o.TotalStaked.IsZero() {
		return decimal.Zero
	}
	return stake.Div(o.TotalStaked)
}

// Validate performs validation on the outcome model
func (o *Outcome) Validate() error {
	if o.MarketID == uuid.Nil {
		return ErrInvalidMarketID
	}
	if o.OutcomeText == "" {
		return ErrInvalidOutcomeText
	}
	if o.TotalStaked.LessThan(decimal.Zero) {
		return ErrInvalidStakeAmount
	}
	return nil
}

// GetPredictionCount returns the number of predictions staked on this outcome
func (o *Outcome) GetPredictionCount(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Prediction{}).Where("outcome_id = ?", o.ID).Count(&count).Error
	return count, err
}

// GetUniqueBackers returns the number of distinct users staked on this outcome
func (o *Outcome) GetUniqueBackers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Prediction{}).Where("outcome_id = ?", o.ID).
		Distinct("user_id").Count(&count).Error
	return count, err
}
