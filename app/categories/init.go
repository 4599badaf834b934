package categories

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/cache"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
)

// Dependencies carries what the categories module needs to mount its routes.
type Dependencies struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	UserRepo   user.Repository
	Cache      cache.Cache[[]CategoryResponse]
}

// Init mounts the category routes on the given group and returns the
// repository for use by the markets module.
func Init(r *gin.RouterGroup, deps Dependencies) Repository {
	c := deps.Cache
	if c == nil {
		c = cache.NewMemoryCache[[]CategoryResponse]()
	}

	repo := NewRepository(deps.DB)
	svc := NewService(repo, c)
	handler := NewHandler(svc)

	public := r.Group("/categories")
	public.GET("", handler.GetCategories)
	public.GET("/:id", handler.GetCategoryByID)
	public.GET("/slug/:slug", handler.GetCategoryBySlug)

	admin := r.Group("/admin/categories")
	admin.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo), api.RequireRole(models.RoleAdmin))
	admin.POST("", handler.CreateCategory)
	admin.PUT("/:id", handler.UpdateCategory)
	admin.DELETE("/:id", handler.DeleteCategory)

	return repo
}
