package markets

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/models"
)

// service implements the Service interface
type service struct {
	repo       Repository
	platform   platform.Service
	recorder   activity.Recorder
	categories CategoryGetter
	config     *Config
}

// NewService creates a new market service
func NewService(repo Repository, platformService platform.Service, recorder activity.Recorder, categories CategoryGetter, config *Config) Service {
	return &service{
		repo:       repo,
		platform:   platformService,
		recorder:   recorder,
		categories: categories,
		config:     config,
	}
}

// ProposeMarket creates a market in proposed status awaiting community
// approval. The approval deadline is derived from the settings snapshot
// taken at proposal time.
func (s *service) ProposeMarket(ctx context.Context, creatorID uuid.UUID, req *CreateMarketRequest) (*MarketResponse, error) {
	snap, err := s.platform.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrRecordNotFound
			}
			return nil, err
		}
	}

	market := &models.Market{
		CreatorID:        creatorID,
		CategoryID:       req.CategoryID,
		Question:         req.Question,
		Description:      req.Description,
		Status:           models.MarketStatusProposed,
		CloseTime:        req.CloseTime,
		ApprovalDeadline: time.Now().Add(snap.ApprovalDeadline),
	}
	for i, text := range req.Outcomes {
		market.Outcomes = append(market.Outcomes, models.Outcome{
			OutcomeText: text,
			OrderIndex:  i,
			TotalStaked: decimal.Zero,
		})
	}
	if err := market.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, market); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, creatorID, models.ActionMarketProposed, market.ID,
		models.ActivityDetails{"question": market.Question}); err != nil {
		return nil, err
	}

	return ToMarketResponse(market), nil
}

// GetMarkets returns the paginated market listing
func (s *service) GetMarkets(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error) {
	markets, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PerPage) - 1) / int64(filters.PerPage))
	resp := &MarketListResponse{
		Markets: make([]MarketResponse, 0, len(markets)),
		Meta: api.PaginationMeta{
			Page:       filters.Page,
			PerPage:    filters.PerPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    filters.Page < totalPages,
			HasPrev:    filters.Page > 1,
		},
	}
	for i := range markets {
		resp.Markets = append(resp.Markets, *ToMarketResponse(&markets[i]))
	}
	return resp, nil
}

// GetMarketByID returns a single market with its outcomes
func (s *service) GetMarketByID(ctx context.Context, id uuid.UUID) (*MarketResponse, error) {
	market, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToMarketResponse(market), nil
}

// CastVote records one approval vote and advances the market to approved
// when the configured threshold is reached. The threshold transition uses
// the conditional status update, so two votes racing across the threshold
// trigger it exactly once.
func (s *service) CastVote(ctx context.Context, marketID, voterID uuid.UUID, req *VoteRequest) (*VoteResponse, error) {
	market, err := s.repo.GetByID(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if !market.IsProposed() {
		return nil, models.ErrInvalidStateTransition
	}
	if market.CreatorID == voterID {
		return nil, models.ErrCreatorVote
	}
	if !market.CanVote(time.Now()) {
		return nil, models.ErrApprovalDeadlinePast
	}

	vote := &models.ApprovalVote{
		MarketID: marketID,
		UserID:   voterID,
		Vote:     req.Vote,
	}
	if err := vote.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateVote(ctx, vote); err != nil {
		return nil, err
	}

	approvals, rejections, err := s.repo.CountVotes(ctx, marketID)
	if err != nil {
		return nil, err
	}

	snap, err := s.platform.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.RequiredApprovalVotes <= 0 {
		return nil, models.ErrApprovalThresholdZero
	}

	transitioned := false
	if approvals >= int64(snap.RequiredApprovalVotes) {
		transitioned, err = s.repo.UpdateStatusIf(ctx, marketID,
			models.MarketStatusProposed, models.MarketStatusApproved)
		if err != nil {
			return nil, err
		}
	}

	if err := s.recorder.Record(ctx, voterID, models.ActionApprovalVoteCast, marketID,
		models.ActivityDetails{"vote": string(req.Vote)}); err != nil {
		return nil, err
	}
	if transitioned {
		if err := s.recorder.Record(ctx, voterID, models.ActionMarketApproved, marketID,
			models.ActivityDetails{"approvals": approvals}); err != nil {
			return nil, err
		}
	}

	return &VoteResponse{
		Approvals:    approvals,
		Rejections:   rejections,
		Transitioned: transitioned,
	}, nil
}
