package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/models"
)

// MockActivityRepository mocks the activity log repository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, filters activity.ListFilters) ([]models.ActivityLog, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.ActivityLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) WithTx(tx *gorm.DB) activity.Repository {
	m.Called(tx)
	return m
}

// MockRecorder mocks the activity recorder other services depend on.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, userID uuid.UUID, actionType string, targetID uuid.UUID, details models.ActivityDetails) error {
	args := m.Called(ctx, userID, actionType, targetID, details)
	return args.Error(0)
}

func (m *MockRecorder) RecordTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, actionType string, targetID uuid.UUID, details models.ActivityDetails) error {
	args := m.Called(ctx, tx, userID, actionType, targetID, details)
	return args.Error(0)
}
