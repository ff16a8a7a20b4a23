package handler

import (
	"net/http"
	"time"

	"inkwell/internal/http-api/repository"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	userRepo repository.UserRepository
}

func NewHealthHandler(userRepo repository.UserRepository) *HealthHandler {
	return &HealthHandler{userRepo: userRepo}
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
}

// Root is a bare liveness probe
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "inkwell api"})
}

// Health reports readiness, including database connectivity
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.userRepo.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "DEGRADED",
			"database":  "Unreachable",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  "Connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
