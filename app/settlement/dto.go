package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

const minDisputeReasonLength = 10

// ResolveRequest declares the winning outcome of a closed market.
type ResolveRequest struct {
	WinningOutcomeID uuid.UUID `json:"winning_outcome_id" binding:"required"`
	Reason           string    `json:"reason"`
}

// SanitizeAndValidate strips HTML from the reason and validates the request.
func (r *ResolveRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) bool {
	r.Reason = s.StripHTML(r.Reason)
	v.Check(r.WinningOutcomeID != uuid.Nil, "winning_outcome_id", "winning outcome is required")
	return v.Valid()
}

// FileDisputeRequest challenges a market's resolution.
type FileDisputeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// SanitizeAndValidate strips HTML from the reason and enforces the
// minimum length.
func (r *FileDisputeRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) bool {
	r.Reason = s.StripHTML(r.Reason)
	v.Check(validator.MinRunes(r.Reason, minDisputeReasonLength),
		"reason", "dispute reason must be at least 10 characters")
	return v.Valid()
}

// DecideDisputeRequest applies the admin verdict to a pending dispute.
type DecideDisputeRequest struct {
	Decision            models.DisputeDecision `json:"decision" binding:"required"`
	AdminNote           string                 `json:"admin_note"`
	NewWinningOutcomeID *uuid.UUID             `json:"new_winning_outcome_id,omitempty"`
}

// SanitizeAndValidate strips HTML from the note and validates the verdict.
func (r *DecideDisputeRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) bool {
	r.AdminNote = s.StripHTML(r.AdminNote)
	v.Check(models.ValidDecision(r.Decision), "decision", "decision must be upheld, overturned or invalidated")
	if r.Decision == models.DecisionOverturned {
		v.Check(r.NewWinningOutcomeID != nil && *r.NewWinningOutcomeID != uuid.Nil,
			"new_winning_outcome_id", "overturned disputes require a new winning outcome")
	}
	return v.Valid()
}

// DisputeFilters narrows the admin dispute listing.
type DisputeFilters struct {
	MarketID string `form:"market_id"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// Validate normalizes pagination and checks filter values.
func (f *DisputeFilters) Validate(v *validator.Validator) bool {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 50
	}
	v.Check(f.PerPage <= 200, "per_page", "must not exceed 200")
	if f.MarketID != "" {
		_, err := uuid.Parse(f.MarketID)
		v.Check(err == nil, "market_id", "must be a valid UUID")
	}
	if f.Status != "" {
		v.Check(validator.In(f.Status,
			string(models.DisputeStatusPending),
			string(models.DisputeStatusUpheld),
			string(models.DisputeStatusOverturned),
			string(models.DisputeStatusInvalidated),
		), "status", "unknown dispute status")
	}
	return v.Valid()
}

// ResolutionResponse reports the applied settlement.
type ResolutionResponse struct {
	MarketID         uuid.UUID       `json:"market_id"`
	WinningOutcomeID uuid.UUID       `json:"winning_outcome_id"`
	WinningPool      decimal.Decimal `json:"winning_pool"`
	LosingPool       decimal.Decimal `json:"losing_pool"`
	FullRefund       bool            `json:"full_refund"`
	PredictionsPaid  int             `json:"predictions_paid"`
	TotalPaidOut     decimal.Decimal `json:"total_paid_out"`
	ResolutionTime   time.Time       `json:"resolution_time"`
}

// DisputeResponse represents a dispute in API responses.
type DisputeResponse struct {
	ID            uuid.UUID            `json:"id"`
	MarketID      uuid.UUID            `json:"market_id"`
	InitiatedBy   uuid.UUID            `json:"initiated_by"`
	Reason        string               `json:"reason"`
	Status        models.DisputeStatus `json:"status"`
	AdminDecision string               `json:"admin_decision,omitempty"`
	DecidedByID   *uuid.UUID           `json:"decided_by,omitempty"`
	ResolvedAt    *time.Time           `json:"resolved_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// DisputeListResponse is the paginated dispute listing.
type DisputeListResponse struct {
	Disputes []DisputeResponse  `json:"disputes"`
	Meta     api.PaginationMeta `json:"meta"`
}

// ToDisputeResponse converts the model into the API payload.
func ToDisputeResponse(d *models.Dispute) *DisputeResponse {
	return &DisputeResponse{
		ID:            d.ID,
		MarketID:      d.MarketID,
		InitiatedBy:   d.InitiatedBy,
		Reason:        d.Reason,
		Status:        d.Status,
		AdminDecision: d.AdminDecision,
		DecidedByID:   d.DecidedByID,
		ResolvedAt:    d.ResolvedAt,
		CreatedAt:     d.CreatedAt,
	}
}
