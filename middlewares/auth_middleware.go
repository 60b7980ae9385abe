package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/services"
	"github.com/yeremiapane/restaurant-ai/utils"
)

// Context keys set by SessionAuth.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextToken  = "sessionToken"
)

// SessionAuth accepts a bearer token only while its logged_in_users row is active.
func SessionAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid token format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := sessions.Validate(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.UserID != nil {
			c.Set(ContextUserID, *claims.UserID)
		}
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}
