package middleware

import (
	"buriti_backend/internal/config"
	"buriti_backend/internal/model"
	"buriti_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware parses the bearer token and stores the claims under the
// "user" context key. No database hit: the claims are the identity.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			util.Error(c, 401, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			util.Error(c, 401, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(parts[1], cfg.JWT.Secret)
		if err != nil {
			util.Error(c, 401, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware rejects callers whose role is not in the allowlist.
// Runs after AuthMiddleware.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Error(c, 401, "authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		util.Error(c, 403, "insufficient permissions")
		c.Abort()
	}
}
