package handler

import (
	"context"
	"time"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/middleware"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthHandler struct {
	store repository.Store
	log   *zap.Logger
}

func NewHealthHandler(store repository.Store, log *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

// Health pings the database
// GET /healthz
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		middleware.FromCtx(c, h.log).Error("Database ping error", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "Failed to ping database",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
