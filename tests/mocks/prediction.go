package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/prediction"
	"github.com/joefazee/agora/models"
)

// MockPredictionRepository mocks the prediction repository.
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Create(ctx context.Context, p *models.Prediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Prediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filters prediction.ListFilters) ([]models.Prediction, int64, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Prediction), args.Get(1).(int64), args.Error(2)
}

func (m *MockPredictionRepository) ListByMarket(ctx context.Context, marketID uuid.UUID) ([]models.Prediction, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) AddStakeToOutcome(ctx context.Context, outcomeID uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, outcomeID, amount)
	return args.Error(0)
}

func (m *MockPredictionRepository) WithTx(_ *gorm.DB) prediction.Repository {
	return m
}
