package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/pratikg-29/footstats/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware allows the request through only when the authenticated
// user's role matches one of the required roles. Must run after
// middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := middleware.GetUserIDFromContext(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		userRole := middleware.GetRoleFromContext(c)
		for _, required := range requiredRoles {
			if strings.EqualFold(userRole, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":    "Forbidden",
			"message":  "You don't have permission to access this resource",
			"required": requiredRoles,
		})
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}
