package platform

import (
	"context"
	"time"

	"github.com/joefazee/agora/internal/cache"
	"github.com/joefazee/agora/models"
)

const snapshotCacheKey = "platform:settings:snapshot"

// service implements the Service interface
type service struct {
	repo        Repository
	cache       cache.Cache[models.Snapshot]
	snapshotTTL time.Duration
}

// NewService creates a new platform settings service. The snapshot cache
// soaks up the read-per-operation load; a zero ttl disables expiry until
// the next update invalidates the key.
func NewService(repo Repository, snapshotCache cache.Cache[models.Snapshot], snapshotTTL time.Duration) Service {
	return &service{
		repo:        repo,
		cache:       snapshotCache,
		snapshotTTL: snapshotTTL,
	}
}

// Snapshot returns the per-call settings value object.
func (s *service) Snapshot(ctx context.Context) (models.Snapshot, error) {
	if snap, err := s.cache.Get(ctx, snapshotCacheKey); err == nil {
		return snap, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	snap := settings.Snapshot()
	// A failed cache write only costs the next caller a DB read.
	_ = s.cache.Set(ctx, snapshotCacheKey, snap, s.snapshotTTL)
	return snap, nil
}

// GetSettings returns the raw settings row for the admin panel
func (s *service) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ToSettingsResponse(settings), nil
}

// UpdateSettings applies a partial update and invalidates the cached snapshot
func (s *service) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.RequiredApprovalVotes != nil {
		settings.RequiredApprovalVotes = *req.RequiredApprovalVotes
	}
	if req.ApprovalDeadlineHours != nil {
		settings.ApprovalDeadlineHours = *req.ApprovalDeadlineHours
	}
	if req.DisputeWindowHours != nil {
		settings.DisputeWindowHours = *req.DisputeWindowHours
	}
	if req.PlatformFeePercentage != nil {
		settings.PlatformFeePercentage = *req.PlatformFeePercentage
	}
	if req.StartingBalance != nil {
		settings.StartingBalance = *req.StartingBalance
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, snapshotCacheKey); err != nil {
		return nil, err
	}

	return ToSettingsResponse(settings), nil
}
