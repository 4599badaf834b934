package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
)

// Dependencies carries what the user module needs to mount its routes.
type Dependencies struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Config     *Config
	Platform   platform.Service
	Recorder   activity.Recorder
}

// Init mounts the user and admin user-management routes on the given group.
// It returns the repository so other modules can reuse the auth middleware.
func Init(r *gin.RouterGroup, deps Dependencies) Repository {
	repo := NewRepository(deps.DB)
	svc := NewService(repo, deps.TokenMaker, deps.Platform, deps.Config)
	adminSvc := NewAdminService(repo, deps.Recorder)

	handler := NewHandler(svc, deps.Sanitizer)
	adminHandler := NewAdminHandler(adminSvc)

	users := r.Group("/users")
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	authed := r.Group("/users")
	authed.Use(AuthMiddleware(deps.TokenMaker, repo))
	authed.GET("/me", handler.GetProfile)

	admin := r.Group("/admin/users")
	admin.Use(AuthMiddleware(deps.TokenMaker, repo), api.RequireRole(models.RoleAdmin))
	admin.GET("", adminHandler.ListUsers)
	admin.PATCH("/:id/role", adminHandler.ChangeRole)
	admin.POST("/:id/balance", adminHandler.AdjustBalance)

	return repo
}
