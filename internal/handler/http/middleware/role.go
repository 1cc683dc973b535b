package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole enforces that the authenticated user has one of the given
// roles. It assumes AuthMiddleware ran first and stored the role under
// "userRole". A patient calling the researcher-onboard route gets a 403
// here instead of silently writing the wrong profile.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		v, exists := c.Get("userRole")
		role, ok := v.(string)
		if !exists || !ok || !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
