package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityDetails is the structured detail payload of an activity record
type ActivityDetails map[string]interface{}

// Value implements driver.Valuer interface for ActivityDetails
func (d *ActivityDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner interface for ActivityDetails
func (d *ActivityDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return nil
}

// Action types recorded by the platform.
const (
	ActionUserRegistered   = "user_registered"
	ActionRoleChanged      = "role_changed"
	ActionBalanceAdjusted  = "balance_adjusted"
	ActionMarketProposed   = "market_proposed"
	ActionMarketApproved   = "market_approved"
	ActionMarketActivated  = "market_activated"
	ActionMarketClosed     = "market_closed"
	ActionMarketDissolved  = "market_dissolved"
	ActionMarketResolved   = "market_resolved"
	ActionApprovalVoteCast = "approval_vote_cast"
	ActionPredictionPlaced = "prediction_placed"
	ActionBonusGranted     = "bonus_granted"
	ActionDisputeFiled     = "dispute_filed"
	ActionDisputeDecided   = "dispute_decided"
	ActionSettingsUpdated  = "settings_updated"
)

// ActivityLog is one immutable audit record. Every mutating operation in
// the platform emits exactly one.
type ActivityLog struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     *uuid.UUID      `gorm:"type:uuid;index:idx_activity_logs_user" json:"user_id"`
	ActionType string          `gorm:"type:varchar(50);not null;index" json:"action_type"`
	TargetID   *uuid.UUID      `gorm:"type:uuid" json:"target_id"`
	Details    ActivityDetails `gorm:"type:jsonb" json:"details"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index:idx_activity_logs_created_at" json:"created_at"`

	// Associations (Note: activity records are immutable, no updates)
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for ActivityLog model
func (*ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate sets up the model before creation
func (a *ActivityLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the activity log model
func (a *ActivityLog) Validate() error {
	if a.ActionType == "" {
		return ErrInvalidActivityAction
	}
	return nil
}

// NewActivity creates an activity record for a user action on a target
func NewActivity(userID uuid.UUID, actionType string, targetID uuid.UUID, details ActivityDetails) *ActivityLog {
	a := &ActivityLog{
		UserID:     &userID,
		ActionType: actionType,
		Details:    details,
	}
	if targetID != uuid.Nil {
		a.TargetID = &targetID
	}
	return a
}
