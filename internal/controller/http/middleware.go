package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sky-archive/internal/entity"
	"sky-archive/internal/usecase"
	"sky-archive/pkg/jwt"
)

const currentUserKey = "current_user"

// Authenticate resolves the bearer token to a user record. A missing or
// malformed header, a token neither secret verifies, and a subject with no
// user record all produce the identical 401 so callers cannot probe which
// check failed.
func Authenticate(jwtService *jwt.Service, authUseCase usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c)
			return
		}

		subject, _, err := jwtService.Verify(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := authUseCase.CurrentUser(c.Request.Context(), subject)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireActive rejects users whose role is disabled. Must run after
// Authenticate.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c)
			return
		}
		if user.Role == entity.RoleDisabled {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin users. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c)
			return
		}
		if user.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Not an admin"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user Authenticate stored on the context, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entity.User)
	return user
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}
