package activity

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/models"
)

// NewServiceFromDB wires the module's service straight from a database handle
func NewServiceFromDB(db *gorm.DB) Service {
	return NewService(NewRepository(db))
}

// Init mounts the admin activity routes. The caller mounts this group
// behind the auth middleware.
func Init(r *gin.RouterGroup, service Service) {
	handler := NewHandler(service)

	group := r.Group("/admin/activity")
	group.GET("", api.RequireRole(models.RoleAdmin), handler.List)
}
