package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kyamashita/study-tracker-api/internal/constants"
	apierrors "github.com/kyamashita/study-tracker-api/internal/errors"
	"github.com/kyamashita/study-tracker-api/internal/token"
)

// RequireAuth resolves the Authorization bearer token to a user
// identity. A missing, malformed, expired or badly-signed token all
// produce the same 401 response.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || raw == "" {
			apierrors.Unauthorized(c, "Missing token")
			c.Abort()
			return
		}

		claims, err := tokens.Resolve(raw)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// Store the resolved identity for handlers; every store and
		// aggregation call in this request is scoped to it.
		c.Set(constants.ContextKeyUserID, claims.UID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
