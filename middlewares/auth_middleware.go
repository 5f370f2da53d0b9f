package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"nutriplan-backend/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the Bearer token and verifies it through the auth
// service. Every token failure produces the same 401 body so callers cannot
// probe for the reason. The account id lands in the context under "accountID".
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		accountID, err := auth.Verify(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrServerMisconfigured) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set("accountID", accountID)
		c.Next()
	}
}
