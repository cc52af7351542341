package middlewares

import (
	"net/http"
	"strings"

	"sweet-shop/constants"
	"sweet-shop/models"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl allows only the given roles through. It must run after
// AuthMiddleware and compares against the role stored on the user row, not the
// one inside the token.
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userRole := strings.TrimSpace(strings.ToLower(userModel.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrAdminRequired})
	}
}
