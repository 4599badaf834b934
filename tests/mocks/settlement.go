package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/settlement"
	"github.com/joefazee/agora/models"
)

// MockSettlementRepository mocks the settlement repository.
type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) ResolveIf(ctx context.Context, marketID, winningOutcomeID, resolvedBy uuid.UUID, reason string, at time.Time) (bool, error) {
	args := m.Called(ctx, marketID, winningOutcomeID, resolvedBy, reason, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementRepository) UpdateStatusIf(ctx context.Context, marketID uuid.UUID, from, to models.MarketStatus) (bool, error) {
	args := m.Called(ctx, marketID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementRepository) FinalizeMarket(ctx context.Context, marketID uuid.UUID, newWinningOutcomeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, marketID, newWinningOutcomeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementRepository) SavePrediction(ctx context.Context, prediction *models.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockSettlementRepository) AdjustUserBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *MockSettlementRepository) CreateDispute(ctx context.Context, dispute *models.Dispute) error {
	args := m.Called(ctx, dispute)
	return args.Error(0)
}

func (m *MockSettlementRepository) GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dispute), args.Error(1)
}

func (m *MockSettlementRepository) ListDisputes(ctx context.Context, filters settlement.DisputeFilters) ([]models.Dispute, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Dispute), args.Get(1).(int64), args.Error(2)
}

func (m *MockSettlementRepository) DecideDisputeIf(ctx context.Context, disputeID uuid.UUID, decision models.DisputeDecision, note string, deciderID uuid.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, disputeID, decision, note, deciderID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementRepository) WithTx(_ *gorm.DB) settlement.Repository {
	return m
}
