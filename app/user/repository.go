package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create creates a new user
func (r *repository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID returns a user by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns a user by username
func (r *repository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users newest first, with the unpaged total
func (r *repository) List(ctx context.Context, filters ListUsersFilters) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	if filters.Username != "" {
		query = query.Where("username ILIKE ?", "%"+filters.Username+"%")
	}
	if filters.Role != "" {
		query = query.Where("role = ?", filters.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	offset := (filters.Page - 1) * filters.PerPage
	err := query.Order("created_at DESC").
		Limit(filters.PerPage).
		Offset(offset).
		Find(&users).Error
	return users, total, err
}

// UpdateRole sets the user's role
func (r *repository) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}

// AdjustBalance applies a signed delta to the user's points balance. The
// guard clause keeps two concurrent debits from overdrawing the account.
func (r *repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id)
	if delta.IsNegative() {
		query = query.Where("points_balance >= ?", delta.Neg())
	}

	result := query.Update("points_balance", gorm.Expr("points_balance + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if delta.IsNegative() {
			return models.ErrInsufficientBalance
		}
		return models.ErrRecordNotFound
	}
	return nil
}
