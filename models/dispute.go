package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisputeStatus tracks a dispute from filing to its terminal decision
type DisputeStatus string

const (
	DisputeStatusPending     DisputeStatus = "pending"
	DisputeStatusUpheld      DisputeStatus = "upheld"
	DisputeStatusOverturned  DisputeStatus = "overturned"
	DisputeStatusInvalidated DisputeStatus = "invalidated"
)

// DisputeDecision is the admin verdict applied to a pending dispute.
// Every decision is terminal.
type DisputeDecision string

const (
	DecisionUpheld      DisputeDecision = "upheld"
	DecisionOverturned  DisputeDecision = "overturned"
	DecisionInvalidated DisputeDecision = "invalidated"
)

// ValidDecision reports whether d is a known dispute decision.
func ValidDecision(d DisputeDecision) bool {
	return d == DecisionUpheld || d == DecisionOverturned || d == DecisionInvalidated
}

// Dispute represents a challenge to a market's resolution, filed within
// the dispute window. One dispute per (market, initiator).
type Dispute struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MarketID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_disputes_market_initiator" json:"market_id"`
	InitiatedBy   uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_disputes_market_initiator" json:"initiated_by"`
	Reason        string        `gorm:"type:text;not null" json:"reason"`
	Status        DisputeStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminDecision string        `gorm:"type:text" json:"admin_decision"`
	DecidedByID   *uuid.UUID    `gorm:"type:uuid" json:"decided_by"`
	ResolvedAt    *time.Time    `gorm:"type:timestamptz" json:"resolved_at"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Market    *Market `gorm:"foreignKey:MarketID" json:"market,omitempty"`
	Initiator *User   `gorm:"foreignKey:InitiatedBy" json:"initiator,omitempty"`
	DecidedBy *User   `gorm:"foreignKey:DecidedByID" json:"decider,omitempty"`
}

// TableName specifies the table name for Dispute model
func (*Dispute) TableName() string {
	return "disputes"
}

// BeforeCreate sets up the model before creation
func (d *Dispute) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// IsPending checks if the dispute is still awaiting a decision
func (d *Dispute) IsPending() bool {
	return d.Status == DisputeStatusPending
}

// Decide marks the dispute with its terminal decision
func (d *Dispute) Decide(decision DisputeDecision, adminNote string, deciderID uuid.UUID) error {
	if !d.IsPending() {
		return ErrDisputeAlreadyDecided
	}
	if !ValidDecision(decision) {
		return ErrInvalidDisputeDecision
	}
	now := time.Now()
	d.Status = DisputeStatus(decision)
	d.AdminDecision = adminNote
	d.DecidedByID = &deciderID
	d.ResolvedAt = &now
	return nil
}

// Validate performs validation on the dispute model
func (d *Dispute) Validate() error {
	if d.MarketID == uuid.Nil {
		return ErrInvalidMarketID
	}
	if d.InitiatedBy == uuid.Nil {
		return ErrInvalidUserID
	}
	if len(d.Reason) < 10 {
		return ErrDisputeReasonTooShort
	}
	return nil
}
