package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ezdiharweb/agency-api/core/config"
	"github.com/ezdiharweb/agency-api/core/database"
)

// HealthHandler reports service liveness: database connectivity and
// which AI provider the pipeline is configured to use.
type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Health)
	router.Get("/settings", h.Settings)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "OK"
	sqlDB, err := database.GetSQLDB()
	if err != nil {
		dbStatus = "ERROR"
	} else if err := sqlDB.PingContext(c.Context()); err != nil {
		dbStatus = "ERROR"
	}

	status := fiber.StatusOK
	if dbStatus != "OK" {
		status = fiber.StatusServiceUnavailable
	}

	cfg := config.Global
	return c.Status(status).JSON(fiber.Map{
		"status":      dbStatus,
		"version":     cfg.App.Version,
		"ai_provider": cfg.AI.Provider,
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Settings exposes the non-secret runtime configuration for diagnostics.
func (h *HealthHandler) Settings(c *fiber.Ctx) error {
	return c.JSON(config.GetAllSettings())
}
