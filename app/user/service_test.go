package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
	"github.com/joefazee/agora/tests/mocks"
)

func newTestService(repo user.Repository, maker security.Maker, plat platform.Service) user.Service {
	return user.NewService(repo, maker, plat, &user.Config{
		SymmetricKey:        "12345678901234567890123456789012",
		AccessTokenDuration: time.Hour,
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		plat := new(mocks.MockPlatformService)
		srvc := newTestService(mockRepo, new(security.MockMaker), plat)

		mockRepo.On("GetByUsername", ctx, "alice").Return(nil, gorm.ErrRecordNotFound)
		plat.On("Snapshot", ctx).Return(models.Snapshot{
			StartingBalance: decimal.NewFromInt(1000),
		}, nil)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "alice" &&
				u.Role == models.RoleMember &&
				u.PointsBalance.Equal(decimal.NewFromInt(1000)) &&
				u.CheckPassword("s3cret-pass")
		})).Return(nil)

		res, err := srvc.Register(ctx, &user.RegisterRequest{
			Username: "alice",
			Password: "s3cret-pass",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice", res.Username)
		assert.Equal(t, string(models.RoleMember), string(res.Role))
		mockRepo.AssertExpectations(t)
		plat.AssertExpectations(t)
	})

	t.Run("username already taken", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		plat := new(mocks.MockPlatformService)
		srvc := newTestService(mockRepo, new(security.MockMaker), plat)

		mockRepo.On("GetByUsername", ctx, "alice").
			Return(&models.User{ID: uuid.New(), Username: "alice"}, nil)

		_, err := srvc.Register(ctx, &user.RegisterRequest{Username: "alice", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, models.ErrInvalidUsername)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		maker := new(security.MockMaker)
		srvc := newTestService(mockRepo, maker, new(mocks.MockPlatformService))

		u := &models.User{ID: uuid.New(), Username: "alice", Role: models.RoleMember}
		assert.NoError(t, u.SetPassword("s3cret-pass"))

		payload := &security.Payload{
			ID:        uuid.New(),
			UserID:    u.ID,
			IssuedAt:  time.Now(),
			ExpiredAt: time.Now().Add(time.Hour),
		}
		mockRepo.On("GetByUsername", ctx, "alice").Return(u, nil)
		maker.On("CreateToken", u.ID, time.Hour).Return("token", payload, nil)

		res, err := srvc.Login(ctx, &user.LoginRequest{Username: "alice", Password: "s3cret-pass"})
		assert.NoError(t, err)
		assert.Equal(t, "token", res.AccessToken)
		assert.Equal(t, u.ID, res.User.ID)
		mockRepo.AssertExpectations(t)
		maker.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		maker := new(security.MockMaker)
		srvc := newTestService(mockRepo, maker, new(mocks.MockPlatformService))

		u := &models.User{ID: uuid.New(), Username: "alice"}
		assert.NoError(t, u.SetPassword("s3cret-pass"))
		mockRepo.On("GetByUsername", ctx, "alice").Return(u, nil)

		_, err := srvc.Login(ctx, &user.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, models.ErrUnauthorized)
		maker.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything)
	})

	t.Run("unknown username", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		srvc := newTestService(mockRepo, new(security.MockMaker), new(mocks.MockPlatformService))

		mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := srvc.Login(ctx, &user.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockUserRepository)
	srvc := newTestService(mockRepo, new(security.MockMaker), new(mocks.MockPlatformService))

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := srvc.GetProfile(ctx, id)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}
