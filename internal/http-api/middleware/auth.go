package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDContextKey = "userID"

// TokenVerifier resolves a bearer token string to a user id. Implemented by
// service.AuthService.
type TokenVerifier interface {
	VerifyToken(tokenString string) (int64, error)
}

// RequireAuth rejects requests without a valid token before any handler code
// runs. The response carries no partial state.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveViewer(c, verifier)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not logged in"})
			c.Abort()
			return
		}
		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the viewer when a valid token is present and swallows
// every failure: a missing, malformed or expired token on a public route
// means an anonymous viewer, never an error. Viewer-relative flags then
// default to false downstream.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := resolveViewer(c, verifier); err == nil {
			c.Set(userIDContextKey, userID)
		}
		c.Next()
	}
}

func resolveViewer(c *gin.Context, verifier TokenVerifier) (int64, error) {
	// Older clients send the raw token; newer ones prefix "Bearer "
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	return verifier.VerifyToken(token)
}

// CurrentUserID returns the authenticated user id set by RequireAuth. Only
// call it behind RequireAuth; it returns 0 for anonymous requests.
func CurrentUserID(c *gin.Context) int64 {
	if v, exists := c.Get(userIDContextKey); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// ViewerID returns the viewer id as a nullable pointer: nil for anonymous
// requests on optional-auth routes.
func ViewerID(c *gin.Context) *int64 {
	if v, exists := c.Get(userIDContextKey); exists {
		if id, ok := v.(int64); ok {
			return &id
		}
	}
	return nil
}
