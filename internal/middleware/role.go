package middleware

import (
	"net/http"

	"roomstay/internal/domain"
	"roomstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has one of the given roles.
// Superadmin passes every check.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		current := domain.UserRole(role.(string))
		if current == domain.RoleSuperadmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// OwnerOnly middleware requires the owner role
func OwnerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleOwner)
}

// CustomerOnly middleware requires the customer role
func CustomerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleCustomer)
}
