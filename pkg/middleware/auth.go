package middleware

import (
	"errors"
	"net/http"
	"strings"

	"mini-blog/pkg/jwt"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// UserResolver maps a verified token subject to a stored user id.
// A valid token whose subject no longer resolves to a user is rejected.
type UserResolver interface {
	ResolveUser(username string) (uint, error)
}

// AuthMiddleware guards every post and like route. It requires an
// Authorization header of the exact form "Bearer <token>", verifies the
// token, resolves the subject to a user, and stores user_id and
// username in the request context.
func AuthMiddleware(jwtService *jwt.Service, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		username, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		userID, err := users.ResolveUser(username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("username", username)
		c.Next()
	}
}
