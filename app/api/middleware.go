package api

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/agora/models"
)

// ContextUserKey is where the auth middleware stores the authenticated user.
const ContextUserKey = "user"

// UserFromContext returns the authenticated user set by the auth middleware.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// RequireRole aborts with 403 unless the authenticated user holds one of
// the given roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			ForbiddenResponse(c, "Access Denied: User not found in context")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		ForbiddenResponse(c, "Access Denied: You do not have the required role")
		c.Abort()
	}
}
