package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/token"
)

// ContextUserIDKey is the key used to store the authenticated user ID in
// the Gin context.
const ContextUserIDKey = "user_id"

// RequireAuth ensures the request carries a valid bearer access token and
// stores the principal's user ID in the context.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.Unauthorized(c, "Invalid authorization header format.")
			c.Abort()
			return
		}

		claims, err := tokens.ParseType(strings.TrimSpace(parts[1]), token.TypeAccess)
		if err != nil {
			apierrors.Unauthorized(c, "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from the context.
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
