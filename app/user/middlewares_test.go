package user_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
	"github.com/joefazee/agora/tests/mocks"
)

func newAuthRouter(maker security.Maker, repo user.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", user.AuthMiddleware(maker, repo), func(c *gin.Context) {
		u, _ := api.UserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": u.Username})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token loads user", func(t *testing.T) {
		maker := new(security.MockMaker)
		repo := new(mocks.MockUserRepository)
		r := newAuthRouter(maker, repo)

		u := &models.User{ID: uuid.New(), Username: "alice", Role: models.RoleMember}
		payload := &security.Payload{
			ID:        uuid.New(),
			UserID:    u.ID,
			IssuedAt:  time.Now(),
			ExpiredAt: time.Now().Add(time.Hour),
		}
		maker.On("VerifyToken", "good-token").Return(payload, nil)
		repo.On("GetByID", mock.Anything, u.ID).Return(u, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(user.AuthorizationHeaderKey, user.AuthorizationTypeBearer+" good-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("missing header", func(t *testing.T) {
		r := newAuthRouter(new(security.MockMaker), new(mocks.MockUserRepository))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newAuthRouter(new(security.MockMaker), new(mocks.MockUserRepository))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(user.AuthorizationHeaderKey, "Basic abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		maker := new(security.MockMaker)
		r := newAuthRouter(maker, new(mocks.MockUserRepository))

		maker.On("VerifyToken", "bad-token").Return(nil, security.ErrInvalidToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(user.AuthorizationHeaderKey, user.AuthorizationTypeBearer+" bad-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		maker := new(security.MockMaker)
		repo := new(mocks.MockUserRepository)
		r := newAuthRouter(maker, repo)

		id := uuid.New()
		payload := &security.Payload{ID: uuid.New(), UserID: id, ExpiredAt: time.Now().Add(time.Hour)}
		maker.On("VerifyToken", "orphan-token").Return(payload, nil)
		repo.On("GetByID", mock.Anything, id).Return(nil, models.ErrRecordNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(user.AuthorizationHeaderKey, user.AuthorizationTypeBearer+" orphan-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
