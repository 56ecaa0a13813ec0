package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// BearerAuth gates endpoints behind a static API key carried as
// "Authorization: Bearer <key>". Requests without the header are rejected
// as unauthorized, requests with the wrong key as forbidden. An empty key
// disables the gate entirely.
func BearerAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if token == header || subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
