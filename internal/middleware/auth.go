package middleware

import (
	"github.com/cosmopedia/internal/models"
	"github.com/cosmopedia/internal/service"
	"github.com/cosmopedia/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "sessionid"
	// contextKeyUser is the key for the authenticated user in gin context
	contextKeyUser = "current_user"
)

// SessionMiddleware resolves the session cookie to an account and
// stores it in the request context. Requests without a valid session
// are rejected with 403, matching the session-auth convention of the
// original API.
func SessionMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			response.Forbidden(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Forbidden(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated account set by
// SessionMiddleware, or nil on unauthenticated requests
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(contextKeyUser)
	if !exists {
		return nil
	}
	return v.(*models.User)
}
