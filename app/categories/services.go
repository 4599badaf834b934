package categories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/internal/cache"
	"github.com/joefazee/agora/models"
)

const (
	activeCategoriesKey = "categories:active"
	activeCategoriesTTL = 5 * time.Minute
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// service implements the Service interface
type service struct {
	repo  Repository
	cache cache.Cache[[]CategoryResponse]
}

// NewService creates a new category service
func NewService(repo Repository, c cache.Cache[[]CategoryResponse]) Service {
	return &service{
		repo:  repo,
		cache: c,
	}
}

// GetCategories returns all categories
func (s *service) GetCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponseList(categories), nil
}

// GetActiveCategories returns the active categories, served from cache
// when warm.
func (s *service) GetActiveCategories(ctx context.Context) ([]CategoryResponse, error) {
	if cached, err := s.cache.Get(ctx, activeCategoriesKey); err == nil {
		return cached, nil
	}

	categories, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := ToCategoryResponseList(categories)

	// A failed cache write only costs the next reader a query.
	_ = s.cache.Set(ctx, activeCategoriesKey, responses, activeCategoriesTTL)
	return responses, nil
}

// GetCategoryByID returns a category by ID
func (s *service) GetCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// GetCategoryBySlug returns a category by slug
func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*CategoryResponse, error) {
	category, err := s.repo.GetBySlug(ctx, s.normalizeSlug(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// CreateCategory creates a new category
func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	slug := s.normalizeSlug(req.Slug)
	if !slugPattern.MatchString(slug) {
		return nil, models.ErrInvalidCategorySlug
	}

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateCategorySlug
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ToCategoryResponse(category), nil
}

// UpdateCategory updates an existing category
func (s *service) UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ToCategoryResponse(category), nil
}

// DeleteCategory deletes a category that no market references
func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrRecordNotFound
		}
		return err
	}

	count, err := s.repo.CountMarkets(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, activeCategoriesKey)
}

// normalizeSlug lowercases and collapses whitespace to hyphens
func (s *service) normalizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
