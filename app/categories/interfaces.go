package categories

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/agora/models"
)

// Repository defines the interface for category data access
type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	ListActive(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountMarkets(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service defines the interface for category business logic
type Service interface {
	GetCategories(ctx context.Context) ([]CategoryResponse, error)
	GetActiveCategories(ctx context.Context) ([]CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*CategoryResponse, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
