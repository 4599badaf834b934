package prediction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/models"
)

// service implements the Service interface
type service struct {
	db         *gorm.DB
	repo       Repository
	marketRepo markets.Repository
	userRepo   user.Repository
	platform   platform.Service
	recorder   activity.Recorder
	config     *Config
}

// NewService creates a new prediction service
func NewService(
	db *gorm.DB,
	repo Repository,
	marketRepo markets.Repository,
	userRepo user.Repository,
	platformService platform.Service,
	recorder activity.Recorder,
	config *Config,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		marketRepo: marketRepo,
		userRepo:   userRepo,
		platform:   platformService,
		recorder:   recorder,
		config:     config,
	}
}

// PlaceStake debits the gross stake from the user's balance, records the
// prediction net of the platform fee, and accumulates the net stake onto
// the outcome pool. The debit, the prediction row, and the pool update
// commit together or not at all.
func (s *service) PlaceStake(ctx context.Context, userID uuid.UUID, req *PlaceStakeRequest) (*Response, error) {
	if req.Amount.LessThan(s.config.MinStakeAmount) {
		return nil, models.ErrInvalidStakeAmount
	}

	market, err := s.marketRepo.GetByID(ctx, req.MarketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	now := time.Now()
	if !market.IsLive() {
		return nil, models.ErrMarketNotLive
	}
	if !market.CanPredict(now) {
		return nil, models.ErrMarketClosed
	}
	if _, err := market.FindOutcome(req.OutcomeID); err != nil {
		return nil, err
	}

	snap, err := s.platform.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	fee := snap.FeeFor(req.Amount)
	netStake := req.Amount.Sub(fee)

	prediction := &models.Prediction{
		UserID:      userID,
		MarketID:    req.MarketID,
		OutcomeID:   req.OutcomeID,
		StakeAmount: netStake,
		FeePaid:     fee,
	}
	if err := prediction.Validate(); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).AdjustBalance(ctx, userID, req.Amount.Neg()); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Create(ctx, prediction); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).AddStakeToOutcome(ctx, req.OutcomeID, netStake); err != nil {
			return err
		}
		return s.recorder.RecordTx(ctx, tx, userID, models.ActionPredictionPlaced, req.MarketID,
			models.ActivityDetails{
				"outcome_id": req.OutcomeID.String(),
				"stake":      netStake.String(),
				"fee":        fee.String(),
			})
	})
	if err != nil {
		return nil, err
	}

	return ToResponse(prediction), nil
}

// GetMyPredictions returns the paginated prediction listing for a user
func (s *service) GetMyPredictions(ctx context.Context, userID uuid.UUID, filters ListFilters) (*ListResponse, error) {
	predictions, total, err := s.repo.ListByUser(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PerPage) - 1) / int64(filters.PerPage))
	resp := &ListResponse{
		Predictions: make([]Response, 0, len(predictions)),
		Meta: api.PaginationMeta{
			Page:       filters.Page,
			PerPage:    filters.PerPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    filters.Page < totalPages,
			HasPrev:    filters.Page > 1,
		},
	}
	for i := range predictions {
		resp.Predictions = append(resp.Predictions, *ToResponse(&predictions[i]))
	}
	return resp, nil
}

// GetMarketPredictions returns every prediction on a market
func (s *service) GetMarketPredictions(ctx context.Context, marketID uuid.UUID) ([]Response, error) {
	predictions, err := s.repo.ListByMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	out := make([]Response, 0, len(predictions))
	for i := range predictions {
		out = append(out, *ToResponse(&predictions[i]))
	}
	return out, nil
}
