package prediction

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/security"
)

// Dependencies carries what the prediction module needs to mount its routes.
type Dependencies struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	UserRepo   user.Repository
	MarketRepo markets.Repository
	Config     *Config
	Platform   platform.Service
	Recorder   activity.Recorder
}

// Init mounts the prediction routes on the given group and returns the
// repository for use by the settlement module.
func Init(r *gin.RouterGroup, deps Dependencies) Repository {
	cfg := deps.Config
	if cfg == nil {
		cfg = GetDefaultConfig()
	}

	repo := NewRepository(deps.DB)
	svc := NewService(deps.DB, repo, deps.MarketRepo, deps.UserRepo, deps.Platform, deps.Recorder, cfg)
	handler := NewHandler(svc, cfg)

	r.GET("/markets/:id/predictions", handler.GetMarketPredictions)

	authed := r.Group("/predictions")
	authed.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo))
	authed.POST("", handler.PlaceStake)
	authed.GET("/mine", handler.GetMyPredictions)

	return repo
}
