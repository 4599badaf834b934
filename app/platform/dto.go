package platform

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// SettingsResponse represents the platform settings payload.
type SettingsResponse struct {
	RequiredApprovalVotes int             `json:"required_approval_votes"`
	ApprovalDeadlineHours int             `json:"approval_deadline_hours"`
	DisputeWindowHours    int             `json:"dispute_window_hours"`
	PlatformFeePercentage decimal.Decimal `json:"platform_fee_percentage"`
	StartingBalance       decimal.Decimal `json:"starting_balance"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// UpdateSettingsRequest carries a partial settings update. Nil fields are
// left unchanged.
type UpdateSettingsRequest struct {
	RequiredApprovalVotes *int             `json:"required_approval_votes"`
	ApprovalDeadlineHours *int             `json:"approval_deadline_hours"`
	DisputeWindowHours    *int             `json:"dispute_window_hours"`
	PlatformFeePercentage *decimal.Decimal `json:"platform_fee_percentage"`
	StartingBalance       *decimal.Decimal `json:"starting_balance"`
}

func (r *UpdateSettingsRequest) Validate(v *validator.Validator) bool {
	if r.RequiredApprovalVotes != nil {
		v.Check(*r.RequiredApprovalVotes > 0, "required_approval_votes", "must be a positive number")
	}
	if r.ApprovalDeadlineHours != nil {
		v.Check(*r.ApprovalDeadlineHours > 0, "approval_deadline_hours", "must be a positive number")
	}
	if r.DisputeWindowHours != nil {
		v.Check(*r.DisputeWindowHours > 0, "dispute_window_hours", "must be a positive number")
	}
	if r.PlatformFeePercentage != nil {
		v.Check(r.PlatformFeePercentage.GreaterThanOrEqual(decimal.Zero) &&
			r.PlatformFeePercentage.LessThan(decimal.NewFromInt(1)),
			"platform_fee_percentage", "must be between 0 and 1")
	}
	if r.StartingBalance != nil {
		v.Check(r.StartingBalance.GreaterThanOrEqual(decimal.Zero), "starting_balance", "must not be negative")
	}
	return v.Valid()
}

// ToSettingsResponse converts the model into the API payload.
func ToSettingsResponse(s *models.PlatformSettings) *SettingsResponse {
	return &SettingsResponse{
		RequiredApprovalVotes: s.RequiredApprovalVotes,
		ApprovalDeadlineHours: s.ApprovalDeadlineHours,
		DisputeWindowHours:    s.DisputeWindowHours,
		PlatformFeePercentage: s.PlatformFeePercentage,
		StartingBalance:       s.StartingBalance,
		UpdatedAt:             s.UpdatedAt,
	}
}
