package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteKind is the direction of an approval vote
type VoteKind string

const (
	VoteApprove VoteKind = "approve"
	VoteReject  VoteKind = "reject"
)

// ApprovalVote records one community vote on a proposed market. A user may
// vote at most once per market; the creator may not vote at all.
type ApprovalVote struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MarketID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_approval_votes_market_user" json:"market_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_approval_votes_market_user" json:"user_id"`
	Vote      VoteKind  `gorm:"type:varchar(10);not null" json:"vote"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Market *Market `gorm:"foreignKey:MarketID;constraint:OnDelete:CASCADE" json:"market,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for ApprovalVote model
func (*ApprovalVote) TableName() string {
	return "approval_votes"
}

// BeforeCreate sets up the model before creation
func (v *ApprovalVote) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// IsApproval checks if this vote counts towards the approval threshold
func (v *ApprovalVote) IsApproval() bool {
	return v.Vote == VoteApprove
}

// Validate performs validation on the approval vote model
func (v *ApprovalVote) Validate() error {
	if v.MarketID == uuid.Nil {
		return ErrInvalidMarketID
	}
	if v.UserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if v.Vote != VoteApprove && v.Vote != VoteReject {
		return ErrInvalidVote
	}
	return nil
}
