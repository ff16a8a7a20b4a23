package handler

import (
	"errors"
	"net/http"

	"inkwell/internal/http-api/dto"
	"inkwell/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// Existing clients expect 411 on invalid input and a bare token string as
// the success payload; both are load-bearing.

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the signup/signin routes behind the auth rate
// limiter.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	router.POST("/signup", rateLimit, h.Signup)
	router.POST("/signin", rateLimit, h.Signin)
}

// Signup creates an account and returns a signed token
// POST /api/v1/user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Username and password (min 6 chars) are required"})
		return
	}

	token, err := h.authService.Signup(c.Request.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database temporarily unavailable. Please try again."})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusLengthRequired, gin.H{"message": "Username might already exist or invalid data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating account"})
		}
		return
	}

	c.JSON(http.StatusOK, token)
}

// Signin authenticates and returns a signed token
// POST /api/v1/user/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusLengthRequired, gin.H{"message": "Username and password (min 6 chars) are required"})
		return
	}

	token, err := h.authService.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database temporarily unavailable. Please try again."})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid username or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during signin"})
		}
		return
	}

	c.JSON(http.StatusOK, token)
}
