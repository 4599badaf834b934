package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MarketStatus represents the current lifecycle status of a market
type MarketStatus string

const (
	MarketStatusProposed  MarketStatus = "proposed"
	MarketStatusApproved  MarketStatus = "approved"
	MarketStatusLive      MarketStatus = "live"
	MarketStatusClosed    MarketStatus = "closed"
	MarketStatusResolved  MarketStatus = "resolved"
	MarketStatusDisputed  MarketStatus = "disputed"
	MarketStatusFinal     MarketStatus = "final"
	MarketStatusDissolved MarketStatus = "dissolved"
)

// Market represents a community-proposed prediction market
type Market struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CreatorID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"creator_id"`
	CategoryID       *uuid.UUID   `gorm:"type:uuid;index" json:"category_id"`
	Question         string       `gorm:"type:varchar(255);not null" json:"question"`
	Description      string       `gorm:"type:text" json:"description"`
	Status           MarketStatus `gorm:"type:varchar(20);default:'proposed';index" json:"status"`
	CloseTime        time.Time    `gorm:"type:timestamptz;not null;index" json:"close_time"`
	ApprovalDeadline time.Time    `gorm:"type:timestamptz;not null" json:"approval_deadline"`
	ResolutionTime   *time.Time   `gorm:"type:timestamptz" json:"resolution_time"`
	ResolutionReason string       `gorm:"type:text" json:"resolution_reason"`
	WinningOutcomeID *uuid.UUID   `gorm:"type:uuid" json:"winning_outcome_id"`
	ResolvedByID     *uuid.UUID   `gorm:"type:uuid" json:"resolved_by"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Creator        *User        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Category       *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ResolvedBy     *User        `gorm:"foreignKey:ResolvedByID" json:"resolved_by_user,omitempty"`
	WinningOutcome *Outcome     `gorm:"foreignKey:WinningOutcomeID" json:"winning_outcome,omitempty"`
	Outcomes       []Outcome    `gorm:"foreignKey:MarketID;constraint:OnDelete:CASCADE" json:"outcomes,omitempty"`
	Predictions    []Prediction `gorm:"foreignKey:MarketID" json:"-"`
	Disputes       []Dispute    `gorm:"foreignKey:MarketID" json:"-"`
}

// TableName specifies the table name for Market model
func (*Market) TableName() string {
	return "markets"
}

// BeforeCreate sets up the model before creation
func (m *Market) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsProposed checks if the market is awaiting community approval
func (m *Market) IsProposed() bool {
	return m.Status == MarketStatusProposed
}

// IsLive checks if the market is in its live staking phase
func (m *Market) IsLive() bool {
	return m.Status == MarketStatusLive
}

// IsResolved checks if the market has been resolved
func (m *Market) IsResolved() bool {
	return m.Status == MarketStatusResolved && m.ResolutionTime != nil
}

// CanPredict checks if predictions may be placed right now
func (m *Market) CanPredict(now time.Time) bool {
	return m.Status == MarketStatusLive && now.Before(m.CloseTime)
}

// CanVote checks if approval votes may still be cast
func (m *Market) CanVote(now time.Time) bool {
	return m.Status == MarketStatusProposed && !now.After(m.ApprovalDeadline)
}

// InDisputeWindow checks whether a dispute may still be filed at now,
// given the platform's dispute window. The boundary instant itself is
// accepted.
func (m *Market) InDisputeWindow(now time.Time, window time.Duration) bool {
	if m.ResolutionTime == nil {
		return false
	}
	return !now.After(m.ResolutionTime.Add(window))
}

// FindOutcome returns the outcome with the given id if it belongs to this
// market's preloaded outcome set.
func (m *Market) FindOutcome(outcomeID uuid.UUID) (*Outcome, error) {
	for i := range m.Outcomes {
		if m.Outcomes[i].ID == outcomeID {
			return &m.Outcomes[i], nil
		}
	}
	return nil, ErrInvalidOutcome
}

// TotalPool sums total_staked across all outcomes.
func (m *Market) TotalPool() decimal.Decimal {
	total := decimal.Zero
	for i := range m.Outcomes {
		total = total.Add(m.Outcomes[i].TotalStaked)
	}
	return total
}

// Validate performs validation on the market model
func (m *Market) Validate() error {
	if m.CreatorID == uuid.Nil {
		return ErrInvalidUserID
	}
	if m.Question == "" {
		return ErrInvalidMarketQuestion
	}
	if m.CloseTime.Before(time.Now()) {
		return ErrInvalidCloseTime
	}
	if m.WinningOutcomeID != nil && len(m.Outcomes) > 0 {
		if _, err := m.FindOutcome(*m.WinningOutcomeID); err != nil {
			return ErrInvalidOutcome
		}
	}
	return nil
}
