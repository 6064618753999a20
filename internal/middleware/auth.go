package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/l3blonde/grip-and-grin/internal/auth"
	"github.com/l3blonde/grip-and-grin/internal/domain"
)

const (
	// UserIDKey is the context key for the authenticated user's id.
	UserIDKey = "user_id"
	// UserRoleKey is the context key for the authenticated user's role.
	UserRoleKey = "user_role"
)

// TokenVerifier validates a bearer token and returns its claims.
// Implemented by auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate returns a middleware that requires a valid bearer token
// and stores the caller's identity in the request context.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, role)
		c.Next()
	}
}

// RequireArticleManager returns a middleware that rejects callers whose
// role cannot manage articles. It must run after Authenticate.
func RequireArticleManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentUserRole(c)
		if !ok || !role.CanManageArticles() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireUserManager returns a middleware that rejects callers whose
// role cannot administer user accounts. It must run after Authenticate.
func RequireUserManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentUserRole(c)
		if !ok || !role.CanManageUsers() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentUserRole returns the authenticated user's role from the context.
func CurrentUserRole(c *gin.Context) (domain.Role, bool) {
	v, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(domain.Role)
	return role, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
