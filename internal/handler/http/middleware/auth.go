package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// AuthMiddleware gates protected routes. Every failure (missing header,
// bad signature, expiry, unknown subject) produces the same 401 so the
// client cannot tell which check failed. On success the authenticated
// identity is attached to the context before any handler runs.
func AuthMiddleware(auth usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))

		c.Next()
	}
}
