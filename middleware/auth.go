package middleware

import (
	"context"
	"net/http"
	"strings"

	"groupmeet/utils"

	"github.com/gin-gonic/gin"
)

// CoordinatorAuthMiddleware gates editing endpoints behind the coordinator
// session token. The token hash must still exist in the auth cache, so
// logout revokes access immediately.
func CoordinatorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		exists, err := utils.GetAuthCacheClient().Exists(context.Background(), utils.HashToken(tokenString)).Result()
		if err != nil || exists == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("coordinator", subject)
		c.Next()
	}
}
