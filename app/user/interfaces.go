package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for user data access
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, filters ListUsersFilters) ([]models.User, int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error

	// AdjustBalance atomically applies a signed delta to the user's
	// points balance. Negative results are rejected by the database.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	WithTx(tx *gorm.DB) Repository
}

// Service defines the interface for user business logic
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*Response, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*Response, error)
}

// AdminService defines the admin-side user management surface
type AdminService interface {
	ListUsers(ctx context.Context, filters ListUsersFilters) (*ListUsersResponse, error)
	ChangeRole(ctx context.Context, adminID, userID uuid.UUID, role models.Role) (*Response, error)
	AdjustBalance(ctx context.Context, adminID, userID uuid.UUID, req *AdjustBalanceRequest) (*Response, error)
}
