package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/models"
)

// MockMarketRepository mocks the market repository.
type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) Create(ctx context.Context, market *models.Market) error {
	args := m.Called(ctx, market)
	return args.Error(0)
}

func (m *MockMarketRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockMarketRepository) List(ctx context.Context, filters *markets.MarketFilters) ([]models.Market, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Market), args.Get(1).(int64), args.Error(2)
}

func (m *MockMarketRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to models.MarketStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarketRepository) CreateVote(ctx context.Context, vote *models.ApprovalVote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockMarketRepository) CountVotes(ctx context.Context, marketID uuid.UUID) (int64, int64, error) {
	args := m.Called(ctx, marketID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockMarketRepository) AddToPools(ctx context.Context, marketID uuid.UUID, amount decimal.Decimal) (int64, error) {
	args := m.Called(ctx, marketID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMarketRepository) CountByStatus(ctx context.Context) (map[models.MarketStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.MarketStatus]int64), args.Error(1)
}

func (m *MockMarketRepository) CountPredictions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMarketRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMarketRepository) WithTx(_ *gorm.DB) markets.Repository {
	return m
}

// MockCategoryGetter mocks the category lookup the market service uses.
type MockCategoryGetter struct {
	mock.Mock
}

func (m *MockCategoryGetter) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}
