package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	userID int64
	err    error
	seen   string
}

func (v *stubVerifier) VerifyToken(tokenString string) (int64, error) {
	v.seen = tokenString
	return v.userID, v.err
}

func newAuthRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer": ViewerID(c), "userID": CurrentUserID(c)})
	})
	return router
}

func TestRequireAuth_NoToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("invalid token")}
	router := newAuthRouter(RequireAuth(verifier))

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You are not logged in")
}

func TestRequireAuth_RawToken(t *testing.T) {
	verifier := &stubVerifier{userID: 7}
	router := newAuthRouter(RequireAuth(verifier))

	// Older clients send the bare token with no scheme prefix
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "raw.jwt.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw.jwt.token", verifier.seen)
}

func TestRequireAuth_BearerPrefixStripped(t *testing.T) {
	verifier := &stubVerifier{userID: 7}
	router := newAuthRouter(RequireAuth(verifier))

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer raw.jwt.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw.jwt.token", verifier.seen)
}

func TestOptionalAuth_InvalidTokenIsAnonymous(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("token expired")}
	router := newAuthRouter(OptionalAuth(verifier))

	// An expired token on a public route degrades to anonymous, never 4xx
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "expired.jwt.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":null`)
}

func TestOptionalAuth_ValidTokenSetsViewer(t *testing.T) {
	verifier := &stubVerifier{userID: 7}
	router := newAuthRouter(OptionalAuth(verifier))

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "raw.jwt.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":7`)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}
