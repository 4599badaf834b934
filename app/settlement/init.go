package settlement

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/prediction"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
)

// Dependencies carries what the settlement module needs to mount its routes.
type Dependencies struct {
	DB             *gorm.DB
	TokenMaker     security.Maker
	UserRepo       user.Repository
	MarketRepo     markets.Repository
	PredictionRepo prediction.Repository
	Sanitizer      sanitizer.HTMLStripperer
	Platform       platform.Service
	Recorder       activity.Recorder
}

// Init mounts the settlement and dispute routes on the given group.
func Init(r *gin.RouterGroup, deps Dependencies) {
	repo := NewRepository(deps.DB)
	svc := NewService(deps.DB, repo, deps.MarketRepo, deps.PredictionRepo, deps.Platform, deps.Recorder)
	handler := NewHandler(svc, deps.Sanitizer)

	authed := r.Group("/markets")
	authed.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo))
	authed.POST("/:id/disputes", handler.FileDispute)

	admin := r.Group("/admin")
	admin.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo), api.RequireRole(models.RoleAdmin))
	admin.POST("/markets/:id/resolve", handler.ResolveMarket)
	admin.POST("/disputes/:id/decision", handler.DecideDispute)
	admin.GET("/disputes", handler.ListDisputes)
}
