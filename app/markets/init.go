package markets

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
)

// Dependencies carries what the markets module needs to mount its routes.
type Dependencies struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	UserRepo   user.Repository
	Sanitizer  sanitizer.HTMLStripperer
	Config     *Config
	Platform   platform.Service
	Recorder   activity.Recorder
	Categories CategoryGetter
}

// Init mounts the market routes on the given group and returns the
// repository for use by the settlement and prediction modules.
func Init(r *gin.RouterGroup, deps Dependencies) Repository {
	cfg := deps.Config
	if cfg == nil {
		cfg = GetDefaultConfig()
	}

	repo := NewRepository(deps.DB)
	svc := NewService(repo, deps.Platform, deps.Recorder, deps.Categories, cfg)
	adminSvc := NewAdminService(repo, deps.Recorder)

	handler := NewHandler(svc, deps.Sanitizer, cfg)
	adminHandler := NewAdminHandler(adminSvc)

	public := r.Group("/markets")
	public.GET("", handler.GetMarkets)
	public.GET("/:id", handler.GetMarket)

	authed := r.Group("/markets")
	authed.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo))
	authed.POST("", handler.ProposeMarket)
	authed.POST("/:id/votes", handler.CastVote)

	admin := r.Group("/admin")
	admin.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo), api.RequireRole(models.RoleAdmin))
	admin.POST("/markets/:id/actions/:action", adminHandler.ApplyAction)
	admin.POST("/markets/:id/bonus", adminHandler.GrantBonus)
	admin.GET("/stats", adminHandler.Stats)

	return repo
}
