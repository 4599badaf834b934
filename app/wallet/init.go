package wallet

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/internal/security"
)

// Dependencies carries what the wallet module needs to mount its routes.
type Dependencies struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	UserRepo   user.Repository
}

// Init mounts the wallet routes on the given group.
func Init(r *gin.RouterGroup, deps Dependencies) {
	repo := NewRepository(deps.DB)
	svc := NewService(repo)
	handler := NewHandler(svc)

	authed := r.Group("/wallet")
	authed.Use(user.AuthMiddleware(deps.TokenMaker, deps.UserRepo))
	authed.GET("", handler.GetWallet)
}
