package markets

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// CreateMarketRequest represents a member's market proposal.
type CreateMarketRequest struct {
	Question    string     `json:"question" binding:"required"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	CloseTime   time.Time  `json:"close_time" binding:"required"`
	Outcomes    []string   `json:"outcomes" binding:"required"`
}

// SanitizeAndValidate strips HTML from free-text fields and validates the
// proposal against the module configuration.
func (r *CreateMarketRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer, config *Config) bool {
	r.Question = s.StripHTML(r.Question)
	r.Description = s.StripHTML(r.Description)
	for i := range r.Outcomes {
		r.Outcomes[i] = s.StripHTML(r.Outcomes[i])
	}

	v.Check(validator.NotBlank(r.Question), "question", "question is required")
	v.Check(validator.MaxRunes(r.Question, config.MaxQuestionLength), "question", "question is too long")
	v.Check(r.CloseTime.After(time.Now()), "close_time", "close time must be in the future")

	v.Check(len(r.Outcomes) >= config.MinOutcomes && len(r.Outcomes) <= config.MaxOutcomes,
		"outcomes", "markets must have between 2 and 5 outcomes")
	for _, o := range r.Outcomes {
		v.Check(validator.NotBlank(o), "outcomes", "outcome text must not be blank")
		v.Check(validator.MaxRunes(o, config.MaxOutcomeLength), "outcomes", "outcome text is too long")
	}
	v.Check(validator.NoDuplicates(r.Outcomes), "outcomes", "outcomes must be unique")

	return v.Valid()
}

// VoteRequest represents one community approval vote.
type VoteRequest struct {
	Vote models.VoteKind `json:"vote" binding:"required"`
}

// Validate checks the vote direction.
func (r *VoteRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.In(string(r.Vote), string(models.VoteApprove), string(models.VoteReject)),
		"vote", "vote must be approve or reject")
	return v.Valid()
}

// BonusRequest represents an admin bonus added to a market's pools.
type BonusRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// Validate checks the bonus amount and reason.
func (r *BonusRequest) Validate(v *validator.Validator) bool {
	v.Check(r.Amount.GreaterThan(decimal.Zero), "amount", "bonus amount must be greater than zero")
	v.Check(validator.NotBlank(r.Reason), "reason", "reason is required")
	return v.Valid()
}

// MarketFilters narrows the market listing.
type MarketFilters struct {
	Status     string `form:"status"`
	CreatorID  string `form:"creator_id"`
	CategoryID string `form:"category_id"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// Validate normalizes pagination and checks the filter values.
func (f *MarketFilters) Validate(v *validator.Validator) bool {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 20
	}
	v.Check(f.PerPage <= 100, "per_page", "must not exceed 100")
	if f.Status != "" {
		v.Check(validator.In(f.Status,
			string(models.MarketStatusProposed),
			string(models.MarketStatusApproved),
			string(models.MarketStatusLive),
			string(models.MarketStatusClosed),
			string(models.MarketStatusResolved),
			string(models.MarketStatusDisputed),
			string(models.MarketStatusFinal),
			string(models.MarketStatusDissolved),
		), "status", "unknown market status")
	}
	if f.CreatorID != "" {
		_, err := uuid.Parse(f.CreatorID)
		v.Check(err == nil, "creator_id", "must be a valid UUID")
	}
	if f.CategoryID != "" {
		_, err := uuid.Parse(f.CategoryID)
		v.Check(err == nil, "category_id", "must be a valid UUID")
	}
	return v.Valid()
}

// OutcomeResponse represents one outcome in API responses.
type OutcomeResponse struct {
	ID          uuid.UUID       `json:"id"`
	OutcomeText string          `json:"outcome_text"`
	OrderIndex  int             `json:"order_index"`
	TotalStaked decimal.Decimal `json:"total_staked"`
}

// MarketResponse represents a market in API responses.
type MarketResponse struct {
	ID               uuid.UUID           `json:"id"`
	CreatorID        uuid.UUID           `json:"creator_id"`
	CategoryID       *uuid.UUID          `json:"category_id,omitempty"`
	Question         string              `json:"question"`
	Description      string              `json:"description"`
	Status           models.MarketStatus `json:"status"`
	CloseTime        time.Time           `json:"close_time"`
	ApprovalDeadline time.Time           `json:"approval_deadline"`
	ResolutionTime   *time.Time          `json:"resolution_time,omitempty"`
	ResolutionReason string              `json:"resolution_reason,omitempty"`
	WinningOutcomeID *uuid.UUID          `json:"winning_outcome_id,omitempty"`
	TotalPool        decimal.Decimal     `json:"total_pool"`
	Outcomes         []OutcomeResponse   `json:"outcomes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// MarketListResponse is the paginated market listing.
type MarketListResponse struct {
	Markets []MarketResponse   `json:"markets"`
	Meta    api.PaginationMeta `json:"meta"`
}

// VoteResponse reports the tally after a vote is recorded.
type VoteResponse struct {
	Approvals    int64 `json:"approvals"`
	Rejections   int64 `json:"rejections"`
	Transitioned bool  `json:"transitioned"`
}

// StatsResponse is the admin platform overview.
type StatsResponse struct {
	MarketsByStatus  map[models.MarketStatus]int64 `json:"markets_by_status"`
	TotalMarkets     int64                         `json:"total_markets"`
	TotalPredictions int64                         `json:"total_predictions"`
	TotalUsers       int64                         `json:"total_users"`
}

// ToMarketResponse converts the model into the API payload.
func ToMarketResponse(m *models.Market) *MarketResponse {
	resp := &MarketResponse{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		CategoryID:       m.CategoryID,
		Question:         m.Question,
		Description:      m.Description,
		Status:           m.Status,
		CloseTime:        m.CloseTime,
		ApprovalDeadline: m.ApprovalDeadline,
		ResolutionTime:   m.ResolutionTime,
		ResolutionReason: m.ResolutionReason,
		WinningOutcomeID: m.WinningOutcomeID,
		TotalPool:        m.TotalPool(),
		CreatedAt:        m.CreatedAt,
	}
	for i := range m.Outcomes {
		o := &m.Outcomes[i]
		resp.Outcomes = append(resp.Outcomes, OutcomeResponse{
			ID:          o.ID,
			OutcomeText: o.OutcomeText,
			OrderIndex:  o.OrderIndex,
			TotalStaked: o.TotalStaked,
		})
	}
	return resp
}
