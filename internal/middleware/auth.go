package middleware

import (
	"net/http"
	"strings"

	"roomstay/internal/domain"
	"roomstay/internal/pkg/jwt"
	"roomstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JWTAuth validates the Bearer token and stores user_id and role in the
// request context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// ActorFromContext rebuilds the authenticated actor placed there by JWTAuth.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return domain.Actor{}, false
	}
	role := domain.UserRole(c.GetString("role"))
	if role == "" {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: id, Role: role}, true
}
