package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleResolver returns the role names granted to a user.
type RoleResolver interface {
	ResolveRoles(ctx context.Context, userID string) ([]string, error)
}

// RequireRoles lets the request through when the user holds any of the
// allowed roles. It must run after AuthMiddleware.
func RequireRoles(resolver RoleResolver, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			c.Abort()
			return
		}

		roles, err := resolver.ResolveRoles(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user roles"})
			c.Abort()
			return
		}

		for _, role := range roles {
			for _, want := range allowed {
				if role == want {
					c.Set("user_roles", roles)
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Acesso negado"})
		c.Abort()
	}
}
