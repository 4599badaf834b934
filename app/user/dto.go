package user

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/validator"
	"github.com/joefazee/agora/models"
)

var usernameRgx = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterRequest represents the request to create an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *RegisterRequest) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) bool {
	r.Username = strings.TrimSpace(s.StripHTML(r.Username))

	v.Check(validator.NotBlank(r.Username), "username", "username is required")
	v.Check(validator.MinRunes(r.Username, 3) && validator.MaxRunes(r.Username, 50),
		"username", "username must be between 3 and 50 characters")
	v.Check(validator.Matches(r.Username, usernameRgx),
		"username", "username may only contain letters, digits and underscores")
	v.Check(validator.MinRunes(r.Password, 6), "password", "password must be at least 6 characters")

	return v.Valid()
}

// LoginRequest represents the request to log in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdjustBalanceRequest represents an admin balance adjustment.
type AdjustBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (r *AdjustBalanceRequest) Validate(v *validator.Validator) bool {
	v.Check(!r.Amount.IsZero(), "amount", "amount must not be zero")
	v.Check(validator.NotBlank(r.Reason), "reason", "reason is required")
	return v.Valid()
}

// ChangeRoleRequest represents an admin role change.
type ChangeRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// ListUsersFilters narrows the admin user listing.
type ListUsersFilters struct {
	Username string `form:"username"`
	Role     string `form:"role"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

func (f *ListUsersFilters) Validate(v *validator.Validator) bool {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = 50
	}
	v.Check(f.PerPage <= 200, "per_page", "must not exceed 200")
	if f.Role != "" {
		v.Check(models.ValidRole(models.Role(f.Role)), "role", "unknown role")
	}
	return v.Valid()
}

// Response represents the response for user data.
type Response struct {
	ID            uuid.UUID       `json:"id"`
	Username      string          `json:"username"`
	Role          models.Role     `json:"role"`
	PointsBalance decimal.Decimal `json:"points_balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        Response  `json:"user"`
}

// ListUsersResponse is the paginated user listing.
type ListUsersResponse struct {
	Users []Response         `json:"users"`
	Meta  api.PaginationMeta `json:"meta"`
}

// ToResponse converts the model into the API payload.
func ToResponse(u *models.User) *Response {
	return &Response{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		PointsBalance: u.PointsBalance,
		CreatedAt:     u.CreatedAt,
	}
}
