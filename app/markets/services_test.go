package markets_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/models"
	"github.com/joefazee/agora/tests/mocks"
)

func defaultSnapshot() models.Snapshot {
	return models.Snapshot{
		RequiredApprovalVotes: 10,
		ApprovalDeadline:      72 * time.Hour,
		DisputeWindow:         24 * time.Hour,
		PlatformFee:           decimal.NewFromFloat(0.01),
		StartingBalance:       decimal.NewFromInt(1000),
	}
}

func proposedMarket(creatorID uuid.UUID) *models.Market {
	return &models.Market{
		ID:               uuid.New(),
		CreatorID:        creatorID,
		Question:         "Will it rain tomorrow?",
		Status:           models.MarketStatusProposed,
		CloseTime:        time.Now().Add(48 * time.Hour),
		ApprovalDeadline: time.Now().Add(24 * time.Hour),
		Outcomes: []models.Outcome{
			{ID: uuid.New(), OutcomeText: "Yes", OrderIndex: 0, TotalStaked: decimal.Zero},
			{ID: uuid.New(), OutcomeText: "No", OrderIndex: 1, TotalStaked: decimal.Zero},
		},
	}
}

func TestService_ProposeMarket(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.New()

	mockRepo := new(mocks.MockMarketRepository)
	plat := new(mocks.MockPlatformService)
	recorder := new(mocks.MockRecorder)
	srvc := markets.NewService(mockRepo, plat, recorder, new(mocks.MockCategoryGetter), markets.GetDefaultConfig())

	plat.On("Snapshot", ctx).Return(defaultSnapshot(), nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(m *models.Market) bool {
		return m.CreatorID == creatorID &&
			m.Status == models.MarketStatusProposed &&
			len(m.Outcomes) == 2 &&
			m.ApprovalDeadline.After(time.Now().Add(71*time.Hour))
	})).Return(nil)
	recorder.On("Record", ctx, creatorID, models.ActionMarketProposed,
		mock.AnythingOfType("uuid.UUID"), mock.Anything).Return(nil)

	resp, err := srvc.ProposeMarket(ctx, creatorID, &markets.CreateMarketRequest{
		Question:  "Will it rain tomorrow?",
		CloseTime: time.Now().Add(48 * time.Hour),
		Outcomes:  []string{"Yes", "No"},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.MarketStatusProposed, resp.Status)
	assert.Len(t, resp.Outcomes, 2)
	mockRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestService_CastVote(t *testing.T) {
	ctx := context.Background()

	newService := func(repo *mocks.MockMarketRepository, plat *mocks.MockPlatformService, rec *mocks.MockRecorder) markets.Service {
		return markets.NewService(repo, plat, rec, new(mocks.MockCategoryGetter), markets.GetDefaultConfig())
	}

	t.Run("creator cannot vote on own market", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		creatorID := uuid.New()
		market := proposedMarket(creatorID)
		srvc := newService(mockRepo, new(mocks.MockPlatformService), new(mocks.MockRecorder))

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)

		_, err := srvc.CastVote(ctx, market.ID, creatorID, &markets.VoteRequest{Vote: models.VoteApprove})
		assert.ErrorIs(t, err, models.ErrCreatorVote)
		mockRepo.AssertNotCalled(t, "CreateVote", mock.Anything, mock.Anything)
	})

	t.Run("rejects votes after the deadline", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		market := proposedMarket(uuid.New())
		market.ApprovalDeadline = time.Now().Add(-time.Minute)
		srvc := newService(mockRepo, new(mocks.MockPlatformService), new(mocks.MockRecorder))

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)

		_, err := srvc.CastVote(ctx, market.ID, uuid.New(), &markets.VoteRequest{Vote: models.VoteApprove})
		assert.ErrorIs(t, err, models.ErrApprovalDeadlinePast)
	})

	t.Run("rejects votes on non-proposed markets", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		market := proposedMarket(uuid.New())
		market.Status = models.MarketStatusLive
		srvc := newService(mockRepo, new(mocks.MockPlatformService), new(mocks.MockRecorder))

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)

		_, err := srvc.CastVote(ctx, market.ID, uuid.New(), &markets.VoteRequest{Vote: models.VoteApprove})
		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})

	t.Run("duplicate vote surfaces as conflict", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		market := proposedMarket(uuid.New())
		voterID := uuid.New()
		srvc := newService(mockRepo, new(mocks.MockPlatformService), new(mocks.MockRecorder))

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("CreateVote", ctx, mock.Anything).Return(models.ErrDuplicateVote)

		_, err := srvc.CastVote(ctx, market.ID, voterID, &markets.VoteRequest{Vote: models.VoteApprove})
		assert.ErrorIs(t, err, models.ErrDuplicateVote)
	})

	t.Run("ninth approval does not transition", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		plat := new(mocks.MockPlatformService)
		recorder := new(mocks.MockRecorder)
		market := proposedMarket(uuid.New())
		voterID := uuid.New()
		srvc := newService(mockRepo, plat, recorder)

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("CreateVote", ctx, mock.Anything).Return(nil)
		mockRepo.On("CountVotes", ctx, market.ID).Return(int64(9), int64(2), nil)
		plat.On("Snapshot", ctx).Return(defaultSnapshot(), nil)
		recorder.On("Record", ctx, voterID, models.ActionApprovalVoteCast, market.ID, mock.Anything).Return(nil)

		resp, err := srvc.CastVote(ctx, market.ID, voterID, &markets.VoteRequest{Vote: models.VoteApprove})
		assert.NoError(t, err)
		assert.Equal(t, int64(9), resp.Approvals)
		assert.False(t, resp.Transitioned)
		mockRepo.AssertNotCalled(t, "UpdateStatusIf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("tenth approval transitions to approved", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		plat := new(mocks.MockPlatformService)
		recorder := new(mocks.MockRecorder)
		market := proposedMarket(uuid.New())
		voterID := uuid.New()
		srvc := newService(mockRepo, plat, recorder)

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("CreateVote", ctx, mock.Anything).Return(nil)
		mockRepo.On("CountVotes", ctx, market.ID).Return(int64(10), int64(2), nil)
		plat.On("Snapshot", ctx).Return(defaultSnapshot(), nil)
		mockRepo.On("UpdateStatusIf", ctx, market.ID,
			models.MarketStatusProposed, models.MarketStatusApproved).Return(true, nil)
		recorder.On("Record", ctx, voterID, models.ActionApprovalVoteCast, market.ID, mock.Anything).Return(nil)
		recorder.On("Record", ctx, voterID, models.ActionMarketApproved, market.ID, mock.Anything).Return(nil)

		resp, err := srvc.CastVote(ctx, market.ID, voterID, &markets.VoteRequest{Vote: models.VoteApprove})
		assert.NoError(t, err)
		assert.True(t, resp.Transitioned)
		mockRepo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("lost threshold race is a no-op", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		plat := new(mocks.MockPlatformService)
		recorder := new(mocks.MockRecorder)
		market := proposedMarket(uuid.New())
		voterID := uuid.New()
		srvc := newService(mockRepo, plat, recorder)

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("CreateVote", ctx, mock.Anything).Return(nil)
		mockRepo.On("CountVotes", ctx, market.ID).Return(int64(11), int64(0), nil)
		plat.On("Snapshot", ctx).Return(defaultSnapshot(), nil)
		mockRepo.On("UpdateStatusIf", ctx, market.ID,
			models.MarketStatusProposed, models.MarketStatusApproved).Return(false, nil)
		recorder.On("Record", ctx, voterID, models.ActionApprovalVoteCast, market.ID, mock.Anything).Return(nil)

		resp, err := srvc.CastVote(ctx, market.ID, voterID, &markets.VoteRequest{Vote: models.VoteApprove})
		assert.NoError(t, err)
		assert.False(t, resp.Transitioned)
		recorder.AssertNotCalled(t, "Record", ctx, voterID, models.ActionMarketApproved, market.ID, mock.Anything)
	})
}

func TestAdminService_ApplyAction(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("activates an approved market", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		recorder := new(mocks.MockRecorder)
		srvc := markets.NewAdminService(mockRepo, recorder)

		market := proposedMarket(uuid.New())
		market.Status = models.MarketStatusApproved

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("UpdateStatusIf", ctx, market.ID,
			models.MarketStatusApproved, models.MarketStatusLive).Return(true, nil)
		recorder.On("Record", ctx, adminID, models.ActionMarketActivated, market.ID,
			models.ActivityDetails{"old_status": "approved", "new_status": "live"}).Return(nil)

		resp, err := srvc.ApplyAction(ctx, adminID, market.ID, models.ActionActivate)
		assert.NoError(t, err)
		assert.Equal(t, models.MarketStatusLive, resp.Status)
		mockRepo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("rejects illegal transition", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		srvc := markets.NewAdminService(mockRepo, new(mocks.MockRecorder))

		market := proposedMarket(uuid.New())
		market.Status = models.MarketStatusFinal

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)

		_, err := srvc.ApplyAction(ctx, adminID, market.ID, models.ActionActivate)
		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
		mockRepo.AssertNotCalled(t, "UpdateStatusIf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race surfaces as invalid transition", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		srvc := markets.NewAdminService(mockRepo, new(mocks.MockRecorder))

		market := proposedMarket(uuid.New())
		market.Status = models.MarketStatusLive

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("UpdateStatusIf", ctx, market.ID,
			models.MarketStatusLive, models.MarketStatusClosed).Return(false, nil)

		_, err := srvc.ApplyAction(ctx, adminID, market.ID, models.ActionClose)
		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})
}

func TestAdminService_GrantBonus(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("splits the bonus evenly across outcomes", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		recorder := new(mocks.MockRecorder)
		srvc := markets.NewAdminService(mockRepo, recorder)

		market := proposedMarket(uuid.New())
		market.Status = models.MarketStatusLive

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)
		mockRepo.On("AddToPools", ctx, market.ID, decimal.NewFromInt(50)).Return(int64(2), nil)
		recorder.On("Record", ctx, adminID, models.ActionBonusGranted, market.ID, mock.Anything).Return(nil)

		_, err := srvc.GrantBonus(ctx, adminID, market.ID, &markets.BonusRequest{
			Amount: decimal.NewFromInt(100),
			Reason: "launch promotion",
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects bonuses on markets not collecting stakes", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		srvc := markets.NewAdminService(mockRepo, new(mocks.MockRecorder))

		market := proposedMarket(uuid.New())
		market.Status = models.MarketStatusResolved

		mockRepo.On("GetByID", ctx, market.ID).Return(market, nil)

		_, err := srvc.GrantBonus(ctx, adminID, market.ID, &markets.BonusRequest{
			Amount: decimal.NewFromInt(100),
			Reason: "late bonus",
		})
		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
		mockRepo.AssertNotCalled(t, "AddToPools", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		mockRepo := new(mocks.MockMarketRepository)
		srvc := markets.NewAdminService(mockRepo, new(mocks.MockRecorder))

		_, err := srvc.GrantBonus(ctx, adminID, uuid.New(), &markets.BonusRequest{
			Amount: decimal.Zero,
			Reason: "nothing",
		})
		assert.ErrorIs(t, err, models.ErrInvalidBonusAmount)
	})
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockMarketRepository)
	srvc := markets.NewAdminService(mockRepo, new(mocks.MockRecorder))

	mockRepo.On("CountByStatus", ctx).Return(map[models.MarketStatus]int64{
		models.MarketStatusLive:  3,
		models.MarketStatusFinal: 7,
	}, nil)
	mockRepo.On("CountPredictions", ctx).Return(int64(42), nil)
	mockRepo.On("CountUsers", ctx).Return(int64(15), nil)

	stats, err := srvc.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalMarkets)
	assert.Equal(t, int64(42), stats.TotalPredictions)
	assert.Equal(t, int64(15), stats.TotalUsers)
}
