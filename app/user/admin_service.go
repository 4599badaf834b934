package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/models"
)

// adminService implements the AdminService interface
type adminService struct {
	repo     Repository
	recorder activity.Recorder
}

// NewAdminService creates a new admin user service
func NewAdminService(repo Repository, recorder activity.Recorder) AdminService {
	return &adminService{repo: repo, recorder: recorder}
}

// ListUsers returns the paginated user listing
func (s *adminService) ListUsers(ctx context.Context, filters ListUsersFilters) (*ListUsersResponse, error) {
	users, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PerPage) - 1) / int64(filters.PerPage))
	resp := &ListUsersResponse{
		Users: make([]Response, 0, len(users)),
		Meta: api.PaginationMeta{
			Page:       filters.Page,
			PerPage:    filters.PerPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    filters.Page < totalPages,
			HasPrev:    filters.Page > 1,
		},
	}
	for i := range users {
		resp.Users = append(resp.Users, *ToResponse(&users[i]))
	}
	return resp, nil
}

// ChangeRole sets the target user's role
func (s *adminService) ChangeRole(ctx context.Context, adminID, userID uuid.UUID, role models.Role) (*Response, error) {
	if !models.ValidRole(role) {
		return nil, models.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, adminID, models.ActionRoleChanged, userID,
		models.ActivityDetails{"role": string(role)}); err != nil {
		return nil, err
	}

	return ToResponse(user), nil
}

// AdjustBalance applies a signed admin adjustment to the user's balance
func (s *adminService) AdjustBalance(ctx context.Context, adminID, userID uuid.UUID, req *AdjustBalanceRequest) (*Response, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if err := s.repo.AdjustBalance(ctx, userID, req.Amount); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, adminID, models.ActionBalanceAdjusted, userID,
		models.ActivityDetails{
			"amount": req.Amount.String(),
			"reason": req.Reason,
		}); err != nil {
		return nil, err
	}

	return ToResponse(user), nil
}
