package markets

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/models"
)

// activityActions maps lifecycle actions to their audit record types.
var activityActions = map[models.MarketAction]string{
	models.ActionApprove:  models.ActionMarketApproved,
	models.ActionActivate: models.ActionMarketActivated,
	models.ActionClose:    models.ActionMarketClosed,
	models.ActionDissolve: models.ActionMarketDissolved,
}

// adminService implements the AdminService interface
type adminService struct {
	repo     Repository
	recorder activity.Recorder
}

// NewAdminService creates a new admin market service
func NewAdminService(repo Repository, recorder activity.Recorder) AdminService {
	return &adminService{repo: repo, recorder: recorder}
}

// ApplyAction moves the market through the lifecycle table. The
// conditional update rejects the action when the market has concurrently
// left the expected status.
func (s *adminService) ApplyAction(ctx context.Context, adminID, marketID uuid.UUID, action models.MarketAction) (*MarketResponse, error) {
	market, err := s.repo.GetByID(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	next, err := models.NextStatus(market.Status, action)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatusIf(ctx, marketID, market.Status, next)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, models.ErrInvalidStateTransition
	}

	actionType, ok := activityActions[action]
	if !ok {
		actionType = string(action)
	}
	if err := s.recorder.Record(ctx, adminID, actionType, marketID,
		models.ActivityDetails{
			"old_status": string(market.Status),
			"new_status": string(next),
		}); err != nil {
		return nil, err
	}

	market.Status = next
	return ToMarketResponse(market), nil
}

// GrantBonus adds admin-granted points to the market's pools, split
// evenly across its outcomes. Only markets still collecting stakes may
// receive a bonus.
func (s *adminService) GrantBonus(ctx context.Context, adminID, marketID uuid.UUID, req *BonusRequest) (*MarketResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.ErrInvalidBonusAmount
	}

	market, err := s.repo.GetByID(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if market.Status != models.MarketStatusApproved && market.Status != models.MarketStatusLive {
		return nil, models.ErrInvalidStateTransition
	}
	if len(market.Outcomes) == 0 {
		return nil, models.ErrInvalidOutcomeCount
	}

	perOutcome := req.Amount.DivRound(decimal.NewFromInt(int64(len(market.Outcomes))), 2)
	if _, err := s.repo.AddToPools(ctx, marketID, perOutcome); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, adminID, models.ActionBonusGranted, marketID,
		models.ActivityDetails{
			"amount": req.Amount.String(),
			"reason": req.Reason,
		}); err != nil {
		return nil, err
	}

	return s.getResponse(ctx, marketID)
}

// Stats returns the admin platform overview
func (s *adminService) Stats(ctx context.Context) (*StatsResponse, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var totalMarkets int64
	for _, c := range byStatus {
		totalMarkets += c
	}

	predictions, err := s.repo.CountPredictions(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		MarketsByStatus:  byStatus,
		TotalMarkets:     totalMarkets,
		TotalPredictions: predictions,
		TotalUsers:       users,
	}, nil
}

func (s *adminService) getResponse(ctx context.Context, marketID uuid.UUID) (*MarketResponse, error) {
	market, err := s.repo.GetByID(ctx, marketID)
	if err != nil {
		return nil, err
	}
	return ToMarketResponse(market), nil
}
