package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/middleware"
)

// Pinger проверяет доступность хранилища (*sql.DB удовлетворяет интерфейсу)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler отвечает на проверки живости сервиса
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler создает обработчик проверки состояния
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health проверяет соединение с БД
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		middleware.Logger(c).WithError(err).Warn("health check: database unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Database unavailable"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
	})
}
