package middleware

import (
	"context"
	"net/http"
	"strings"

	"igclone/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
)

// UserLookup confirms that the user bound to a token still exists.
type UserLookup interface {
	Exists(ctx context.Context, userID uint) (bool, error)
}

// AuthMiddleware resolves the Bearer token to a user id and stores it under
// ContextUserID. lookup may be nil.
func AuthMiddleware(jwtService *jwt.Service, lookup UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		if lookup != nil {
			exists, err := lookup.Exists(c.Request.Context(), claims.UserID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			if !exists {
				c.Header("WWW-Authenticate", "Bearer")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
