package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// DatabaseHealth is the part of the database manager the health check needs
type DatabaseHealth interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves the liveness and readiness probe
type HealthHandler struct {
	db DatabaseHealth
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseHealth) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "down",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool:     h.db.PoolMetrics(),
	})
}
