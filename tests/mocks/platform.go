package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/models"
)

// MockPlatformRepository mocks the platform settings repository.
type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlatformSettings), args.Error(1)
}

func (m *MockPlatformRepository) Update(ctx context.Context, settings *models.PlatformSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockPlatformService mocks the platform settings service.
type MockPlatformService struct {
	mock.Mock
}

func (m *MockPlatformService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Snapshot), args.Error(1)
}

func (m *MockPlatformService) GetSettings(ctx context.Context) (*platform.SettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.SettingsResponse), args.Error(1)
}

func (m *MockPlatformService) UpdateSettings(ctx context.Context, req *platform.UpdateSettingsRequest) (*platform.SettingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.SettingsResponse), args.Error(1)
}
