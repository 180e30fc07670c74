package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Roopkumar213/KNG/internal/services"
)

const UserIDContextKey = "user_id"

// tokenGateMessage is deliberately the same for every failure mode so the
// caller cannot tell a missing header from a bad signature or expiry.
const tokenGateMessage = "invalid or expired token"

// Auth returns middleware that validates the Authorization bearer token on
// protected routes. On success the authenticated user id is stored in the
// request context.
func Auth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": tokenGateMessage})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": tokenGateMessage})
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": tokenGateMessage})
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id from context, or 0 when the
// request did not pass the token gate.
func GetUserID(c *gin.Context) int64 {
	if id, exists := c.Get(UserIDContextKey); exists {
		return id.(int64)
	}
	return 0
}
