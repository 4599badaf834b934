package prediction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// PlaceStakeRequest represents a member staking points on an outcome.
// Amount is the gross stake; the platform fee is deducted from it before
// the net stake enters the pool.
type PlaceStakeRequest struct {
	MarketID  uuid.UUID       `json:"market_id" binding:"required"`
	OutcomeID uuid.UUID       `json:"outcome_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// Validate checks the stake against the module configuration.
func (r *PlaceStakeRequest) Validate(v *validator.Validator, config *Config) bool {
	v.Check(r.MarketID != uuid.Nil, "market_id", "market is required")
	v.Check(r.OutcomeID != uuid.Nil, "outcome_id", "outcome is required")
	v.Check(r.Amount.GreaterThanOrEqual(config.MinStakeAmount),
		"amount", "stake amount must be at least 1 point")
	return v.Valid()
}

// ListFilters narrows a user's prediction listing.
type ListFilters struct {
	MarketID string `form:"market_id"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// Validate normalizes pagination and checks filter values.
func (f *ListFilters) Validate(v *validator.Validator) bool {
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
	return v.Valid()
}

// Response represents a prediction in API responses.
type Response struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	MarketID     uuid.UUID        `json:"market_id"`
	OutcomeID    uuid.UUID        `json:"outcome_id"`
	StakeAmount  decimal.Decimal  `json:"stake_amount"`
	FeePaid      decimal.Decimal  `json:"fee_paid"`
	PayoutAmount *decimal.Decimal `json:"payout_amount,omitempty"`
	PaidOut      bool             `json:"paid_out"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ListResponse is the paginated prediction listing.
type ListResponse struct {
	Predictions []Response         `json:"predictions"`
	Meta        api.PaginationMeta `json:"meta"`
}

// ToResponse converts the model into the API payload.
func ToResponse(p *models.Prediction) *Response {
	return &Response{
		ID:           p.ID,
		UserID:       p.UserID,
		MarketID:     p.MarketID,
		OutcomeID:    p.OutcomeID,
		StakeAmount:  p.StakeAmount,
		FeePaid:      p.FeePaid,
		PayoutAmount: p.PayoutAmount,
		PaidOut:      p.PaidOut,
		CreatedAt:    p.CreatedAt,
	}
}
