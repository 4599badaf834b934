package platform

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/internal/cache"
	"github.com/joefazee/agora/models"
)

// Dependencies holds what the platform module needs from the outside
type Dependencies struct {
	DB          *gorm.DB
	Cache       cache.Cache[models.Snapshot]
	SnapshotTTL time.Duration
}

// NewServiceFromDeps wires the module's service from its dependencies
func NewServiceFromDeps(deps Dependencies) Service {
	ttl := deps.SnapshotTTL
	if ttl == 0 {
		ttl = time.Minute
	}
	return NewService(NewRepository(deps.DB), deps.Cache, ttl)
}

// Init mounts the admin settings routes. The caller mounts this group
// behind the auth middleware.
func Init(r *gin.RouterGroup, service Service) {
	handler := NewHandler(service)

	group := r.Group("/admin/settings")
	group.GET("", api.RequireRole(models.RoleAdmin), handler.GetSettings)
	group.PATCH("", api.RequireRole(models.RoleAdmin), handler.UpdateSettings)
}
