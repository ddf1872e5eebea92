package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"velora/utils"
)

// FirebaseAuthMiddleware verifies the bearer token against Firebase Auth
// and stores the caller's uid in the context. Fails closed: any
// verification problem is a 401.
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			return
		}

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			return
		}

		c.Set("uid", token.UID)
		c.Next()
	}
}

// CallerUID returns the authenticated uid set by FirebaseAuthMiddleware.
func CallerUID(c *gin.Context) string {
	uid, _ := c.Get("uid")
	s, _ := uid.(string)
	return s
}
