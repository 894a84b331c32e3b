package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/ninetd/ninetd/internal/errors"
)

// ContextKeyUserID is the gin context key holding the authenticated user id.
const ContextKeyUserID = "user_id"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(token string) (uint64, error)
}

// RequireAuth checks the Authorization header for a valid bearer token
// and stores the resolved user id on the context.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "No token")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		userID, err := verifier.VerifyToken(token)
		if err != nil {
			apierrors.Unauthorized(c, "Bad token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint64)
	return id, ok
}
