package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const accountIDKey = "account_id"

// RequireAuth rejects requests without a valid bearer token and stores the
// account ID on the context for handlers.
func RequireAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := accountFromHeader(tm, c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(accountIDKey, id)
		c.Next()
	}
}

// OptionalAuth stores the account ID when a valid token is present but lets
// anonymous requests through. Used for pages whose content differs for
// logged-in users (e.g. the applied flag on a job).
func OptionalAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := accountFromHeader(tm, c); ok {
			c.Set(accountIDKey, id)
		}
		c.Next()
	}
}

// AccountID returns the authenticated account ID, or 0 for anonymous requests.
func AccountID(c *gin.Context) uint {
	if v, ok := c.Get(accountIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func accountFromHeader(tm *TokenManager, c *gin.Context) (uint, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return 0, false
	}
	id, err := tm.Parse(token)
	if err != nil {
		return 0, false
	}
	return id, true
}
