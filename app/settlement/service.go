package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/prediction"
	"github.com/joefazee/agora/models"
)

// service implements the Service interface
type service struct {
	db             *gorm.DB
	repo           Repository
	marketRepo     markets.Repository
	predictionRepo prediction.Repository
	platform       platform.Service
	recorder       activity.Recorder
	engine         *Engine
}

// NewService creates a new settlement service
func NewService(
	db *gorm.DB,
	repo Repository,
	marketRepo markets.Repository,
	predictionRepo prediction.Repository,
	platformService platform.Service,
	recorder activity.Recorder,
) Service {
	return &service{
		db:             db,
		repo:           repo,
		marketRepo:     marketRepo,
		predictionRepo: predictionRepo,
		platform:       platformService,
		recorder:       recorder,
		engine:         NewEngine(),
	}
}

// ResolveMarket settles a closed market under the declared winning
// outcome. The closed-to-resolved transition is a conditional update, so
// a second concurrent resolve loses the race and reports
// ErrMarketAlreadyResolved with no balance effects.
func (s *service) ResolveMarket(ctx context.Context, resolverID, marketID uuid.UUID, req *ResolveRequest) (*ResolutionResponse, error) {
	market, err := s.marketRepo.GetByID(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if market.Status != models.MarketStatusClosed {
		if market.Status == models.MarketStatusResolved || market.Status == models.MarketStatusFinal {
			return nil, models.ErrMarketAlreadyResolved
		}
		return nil, models.ErrInvalidStateTransition
	}
	if _, err := market.FindOutcome(req.WinningOutcomeID); err != nil {
		return nil, err
	}

	predictions, err := s.predictionRepo.ListByMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	plan, err := s.engine.BuildPlan(market.Outcomes, predictions, req.WinningOutcomeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var paid int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		resolved, err := txRepo.ResolveIf(ctx, marketID, req.WinningOutcomeID, resolverID, req.Reason, now)
		if err != nil {
			return err
		}
		if !resolved {
			return models.ErrMarketAlreadyResolved
		}

		paid, err = s.applyPlan(ctx, txRepo, predictions, plan)
		if err != nil {
			return err
		}

		return s.recorder.RecordTx(ctx, tx, resolverID, models.ActionMarketResolved, marketID,
			models.ActivityDetails{
				"winning_outcome_id": req.WinningOutcomeID.String(),
				"full_refund":        plan.FullRefund,
				"total_paid_out":     plan.TotalPayout().String(),
			})
	})
	if err != nil {
		return nil, err
	}

	return &ResolutionResponse{
		MarketID:         marketID,
		WinningOutcomeID: req.WinningOutcomeID,
		WinningPool:      plan.WinningPool,
		LosingPool:       plan.LosingPool,
		FullRefund:       plan.FullRefund,
		PredictionsPaid:  paid,
		TotalPaidOut:     plan.TotalPayout(),
		ResolutionTime:   now,
	}, nil
}

// applyPlan settles each planned line, skipping predictions already paid
// out so an interrupted settlement can be resumed safely. Returns the
// number of predictions settled.
func (s *service) applyPlan(ctx context.Context, repo Repository, predictions []models.Prediction, plan *Plan) (int, error) {
	byID := make(map[uuid.UUID]*models.Prediction, len(predictions))
	for i := range predictions {
		byID[predictions[i].ID] = &predictions[i]
	}

	paid := 0
	for i := range plan.Lines {
		line := &plan.Lines[i]
		p, ok := byID[line.PredictionID]
		if !ok {
			continue
		}
		if p.PaidOut {
			continue
		}
		if err := p.Settle(line.Payout); err != nil {
			return paid, err
		}
		if err := repo.SavePrediction(ctx, p); err != nil {
			return paid, err
		}
		if line.Payout.GreaterThan(decimal.Zero) {
			if err := repo.AdjustUserBalance(ctx, line.UserID, line.Payout); err != nil {
				return paid, err
			}
		}
		paid++
	}
	return paid, nil
}

// FileDispute challenges a resolved market within the dispute window.
// The resolved-to-disputed transition uses the conditional update, so
// concurrent filings move the market exactly once.
func (s *service) FileDispute(ctx context.Context, userID, marketID uuid.UUID, req *FileDisputeRequest) (*DisputeResponse, error) {
	market, err := s.marketRepo.GetByID(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}

	if market.Status != models.MarketStatusResolved {
		return nil, models.ErrInvalidStateTransition
	}

	snap, err := s.platform.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !market.InDisputeWindow(time.Now(), snap.DisputeWindow) {
		return nil, models.ErrDisputeWindowClosed
	}

	dispute := &models.Dispute{
		MarketID:    marketID,
		InitiatedBy: userID,
		Reason:      req.Reason,
		Status:      models.DisputeStatusPending,
	}
	if err := dispute.Validate(); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		if err := txRepo.CreateDispute(ctx, dispute); err != nil {
			return err
		}
		moved, err := txRepo.UpdateStatusIf(ctx, marketID,
			models.MarketStatusResolved, models.MarketStatusDisputed)
		if err != nil {
			return err
		}
		if !moved {
			// Lost a race with another filing; the market is already
			// under dispute.
			return models.ErrInvalidStateTransition
		}

		return s.recorder.RecordTx(ctx, tx, userID, models.ActionDisputeFiled, marketID,
			models.ActivityDetails{"reason": req.Reason})
	})
	if err != nil {
		return nil, err
	}

	return ToDisputeResponse(dispute), nil
}

// DecideDispute applies the admin verdict to a pending dispute. All
// three verdicts end the market in final status. The pending-to-terminal
// dispute transition is a conditional update, so a second concurrent
// decision reports ErrDisputeAlreadyDecided and mutates nothing.
func (s *service) DecideDispute(ctx context.Context, adminID, disputeID uuid.UUID, req *DecideDisputeRequest) (*DisputeResponse, error) {
	dispute, err := s.repo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	if !dispute.IsPending() {
		return nil, models.ErrDisputeAlreadyDecided
	}
	if !models.ValidDecision(req.Decision) {
		return nil, models.ErrInvalidDisputeDecision
	}

	market, err := s.marketRepo.GetByID(ctx, dispute.MarketID)
	if err != nil {
		return nil, err
	}
	if market.Status != models.MarketStatusDisputed {
		return nil, models.ErrInvalidStateTransition
	}

	if req.Decision == models.DecisionOverturned {
		if req.NewWinningOutcomeID == nil || *req.NewWinningOutcomeID == uuid.Nil {
			return nil, models.ErrMissingNewWinner
		}
		if _, err := market.FindOutcome(*req.NewWinningOutcomeID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		decided, err := txRepo.DecideDisputeIf(ctx, disputeID, req.Decision, req.AdminNote, adminID, now)
		if err != nil {
			return err
		}
		if !decided {
			return models.ErrDisputeAlreadyDecided
		}

		var newWinner *uuid.UUID
		switch req.Decision {
		case models.DecisionUpheld:
			// Resolution stands; nothing to reverse.

		case models.DecisionOverturned:
			newWinner = req.NewWinningOutcomeID
			if err := s.overturn(ctx, tx, txRepo, market, *req.NewWinningOutcomeID); err != nil {
				return err
			}

		case models.DecisionInvalidated:
			if err := s.invalidate(ctx, tx, txRepo, market); err != nil {
				return err
			}
		}

		finalized, err := txRepo.FinalizeMarket(ctx, market.ID, newWinner)
		if err != nil {
			return err
		}
		if !finalized {
			return models.ErrInvalidStateTransition
		}

		return s.recorder.RecordTx(ctx, tx, adminID, models.ActionDisputeDecided, disputeID,
			models.ActivityDetails{
				"market_id": market.ID.String(),
				"decision":  string(req.Decision),
			})
	})
	if err != nil {
		return nil, err
	}

	if err := dispute.Decide(req.Decision, req.AdminNote, adminID); err != nil {
		return nil, err
	}
	return ToDisputeResponse(dispute), nil
}

// overturn reverses every settled prediction, then re-runs the payout
// calculation under the new winner. Stakes and pool totals are untouched
// by the reversal, so the recomputed shares match what an original
// resolution to the new winner would have produced.
func (s *service) overturn(ctx context.Context, tx *gorm.DB, repo Repository, market *models.Market, newWinningOutcomeID uuid.UUID) error {
	predictions, err := s.predictionRepo.WithTx(tx).ListByMarket(ctx, market.ID)
	if err != nil {
		return err
	}

	// Reversal pass covers former losers too: their payout was zero but
	// the paid_out flag must reset so the re-run reconsiders them.
	for i := range predictions {
		p := &predictions[i]
		if !p.PaidOut {
			continue
		}
		reversed := p.Reopen()
		if err := repo.SavePrediction(ctx, p); err != nil {
			return err
		}
		if reversed.GreaterThan(decimal.Zero) {
			if err := repo.AdjustUserBalance(ctx, p.UserID, reversed.Neg()); err != nil {
				return err
			}
		}
	}

	plan, err := s.engine.BuildPlan(market.Outcomes, predictions, newWinningOutcomeID)
	if err != nil {
		return err
	}
	_, err = s.applyPlan(ctx, repo, predictions, plan)
	return err
}

// invalidate refunds every prediction its net stake regardless of the
// prior settlement. Prior payouts are not reversed; the platform fee is
// not refunded.
func (s *service) invalidate(ctx context.Context, tx *gorm.DB, repo Repository, market *models.Market) error {
	predictions, err := s.predictionRepo.WithTx(tx).ListByMarket(ctx, market.ID)
	if err != nil {
		return err
	}

	for i := range predictions {
		p := &predictions[i]
		refund := p.StakeAmount
		p.PayoutAmount = &refund
		p.PaidOut = true
		if err := repo.SavePrediction(ctx, p); err != nil {
			return err
		}
		if err := repo.AdjustUserBalance(ctx, p.UserID, refund); err != nil {
			return err
		}
	}
	return nil
}

// ListDisputes returns the paginated dispute listing
func (s *service) ListDisputes(ctx context.Context, filters DisputeFilters) (*DisputeListResponse, error) {
	disputes, total, err := s.repo.ListDisputes(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PerPage) - 1) / int64(filters.PerPage))
	resp := &DisputeListResponse{
		Disputes: make([]DisputeResponse, 0, len(disputes)),
		Meta: api.PaginationMeta{
			Page:       filters.Page,
			PerPage:    filters.PerPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    filters.Page < totalPages,
			HasPrev:    filters.Page > 1,
		},
	}
	for i := range disputes {
		resp.Disputes = append(resp.Disputes, *ToDisputeResponse(&disputes[i]))
	}
	return resp, nil
}
