package activity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/models"
)

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new activity log service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record appends one activity record outside any transaction
func (s *service) Record(ctx context.Context, userID uuid.UUID, actionType string, targetID uuid.UUID, details models.ActivityDetails) error {
	entry := models.NewActivity(userID, actionType, targetID, details)
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.repo.Insert(ctx, entry)
}

// RecordTx appends one activity record inside the caller's transaction
func (s *service) RecordTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, actionType string, targetID uuid.UUID, details models.ActivityDetails) error {
	entry := models.NewActivity(userID, actionType, targetID, details)
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.repo.WithTx(tx).Insert(ctx, entry)
}

// List returns the paginated activity feed for the admin panel
func (s *service) List(ctx context.Context, filters ListFilters) (*ListResponse, error) {
	entries, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	resp := &ListResponse{
		Entries: make([]EntryResponse, 0, len(entries)),
		Meta:    paginationMeta(filters.Page, filters.PerPage, total),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, ToEntryResponse(&entries[i]))
	}
	return resp, nil
}

func paginationMeta(page, perPage int, total int64) api.PaginationMeta {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return api.PaginationMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
