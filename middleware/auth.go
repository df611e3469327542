package middleware

import (
	"net/http"
	"strings"

	"elysianshores/models"
	"elysianshores/services"
	"elysianshores/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the Authorization bearer token to a user and aborts
// with 401 otherwise.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token := ""
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token = strings.TrimSpace(header[7:])
		}
		if token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			utils.JSONDetailError(c, http.StatusUnauthorized, "Not authenticated")
			c.Abort()
			return
		}

		user, err := auth.UserFromToken(token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			utils.JSONDetailError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user RequireAuth stored on the request.
func CurrentUser(c *gin.Context) models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(models.User); ok {
			return user
		}
	}
	return models.User{}
}
