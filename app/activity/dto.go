package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

// ListFilters narrows the admin activity listing.
type ListFilters struct {
	UserID     *uuid.UUID `form:"user_id"`
	ActionType string     `form:"action_type"`
	Page       int        `form:"page"`
	PerPage    int        `form:"per_page"`
}

func (f *ListFilters) Validate(v *validator.Validator) bool {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 50
	}
	v.Check(f.PerPage <= 200, "per_page", "must not exceed 200")
	return v.Valid()
}

// EntryResponse is one activity record in API form.
type EntryResponse struct {
	ID         uuid.UUID              `json:"id"`
	UserID     *uuid.UUID             `json:"user_id"`
	ActionType string                 `json:"action_type"`
	TargetID   *uuid.UUID             `json:"target_id"`
	Details    models.ActivityDetails `json:"details"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ListResponse is the paginated activity listing.
type ListResponse struct {
	Entries []EntryResponse    `json:"entries"`
	Meta    api.PaginationMeta `json:"meta"`
}

// ToEntryResponse converts the model into the API payload.
func ToEntryResponse(a *models.ActivityLog) EntryResponse {
	return EntryResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		ActionType: a.ActionType,
		TargetID:   a.TargetID,
		Details:    a.Details,
		CreatedAt:  a.CreatedAt,
	}
}
