package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/models"
	"github.com/joefazee/agora/tests/mocks"
)

func TestAdminService_ListUsers(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockUserRepository)
	srvc := user.NewAdminService(mockRepo, new(mocks.MockRecorder))

	filters := user.ListUsersFilters{Page: 2, PerPage: 50}
	users := []models.User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}
	mockRepo.On("List", ctx, filters).Return(users, int64(120), nil)

	resp, err := srvc.ListUsers(ctx, filters)
	assert.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(120), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasNext)
	assert.True(t, resp.Meta.HasPrev)
	mockRepo.AssertExpectations(t)
}

func TestAdminService_ChangeRole(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		recorder := new(mocks.MockRecorder)
		srvc := user.NewAdminService(mockRepo, recorder)

		mockRepo.On("UpdateRole", ctx, userID, models.RoleViewer).Return(nil)
		mockRepo.On("GetByID", ctx, userID).
			Return(&models.User{ID: userID, Username: "bob", Role: models.RoleViewer}, nil)
		recorder.On("Record", ctx, adminID, models.ActionRoleChanged, userID,
			models.ActivityDetails{"role": string(models.RoleViewer)}).Return(nil)

		resp, err := srvc.ChangeRole(ctx, adminID, userID, models.RoleViewer)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleViewer, resp.Role)
		mockRepo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("unknown role", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		srvc := user.NewAdminService(mockRepo, new(mocks.MockRecorder))

		_, err := srvc.ChangeRole(ctx, adminID, userID, models.Role("czar"))
		assert.ErrorIs(t, err, models.ErrInvalidRole)
		mockRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		srvc := user.NewAdminService(mockRepo, new(mocks.MockRecorder))

		mockRepo.On("UpdateRole", ctx, userID, models.RoleAdmin).Return(models.ErrRecordNotFound)

		_, err := srvc.ChangeRole(ctx, adminID, userID, models.RoleAdmin)
		assert.ErrorIs(t, err, models.ErrRecordNotFound)
	})
}

func TestAdminService_AdjustBalance(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		recorder := new(mocks.MockRecorder)
		srvc := user.NewAdminService(mockRepo, recorder)

		amount := decimal.NewFromInt(250)
		mockRepo.On("GetByID", ctx, userID).
			Return(&models.User{ID: userID, Username: "bob", PointsBalance: decimal.NewFromInt(1250)}, nil)
		mockRepo.On("AdjustBalance", ctx, userID, amount).Return(nil)
		recorder.On("Record", ctx, adminID, models.ActionBalanceAdjusted, userID,
			models.ActivityDetails{"amount": "250", "reason": "contest prize"}).Return(nil)

		resp, err := srvc.AdjustBalance(ctx, adminID, userID, &user.AdjustBalanceRequest{
			Amount: amount,
			Reason: "contest prize",
		})
		assert.NoError(t, err)
		assert.True(t, resp.PointsBalance.Equal(decimal.NewFromInt(1250)))
		mockRepo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		recorder := new(mocks.MockRecorder)
		srvc := user.NewAdminService(mockRepo, recorder)

		amount := decimal.NewFromInt(-5000)
		mockRepo.On("GetByID", ctx, userID).
			Return(&models.User{ID: userID, PointsBalance: decimal.NewFromInt(100)}, nil)
		mockRepo.On("AdjustBalance", ctx, userID, amount).Return(models.ErrInsufficientBalance)

		_, err := srvc.AdjustBalance(ctx, adminID, userID, &user.AdjustBalanceRequest{
			Amount: amount,
			Reason: "penalty",
		})
		assert.ErrorIs(t, err, models.ErrInsufficientBalance)
		recorder.AssertNotCalled(t, "Record",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
