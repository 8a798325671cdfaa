package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/config"
	"github.com/hireflow/formstate/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler handles the service health probe
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
	Log *zap.Logger
}

// Check handles GET /api/health
// @Summary Service health
// @Description Probe database and authorizer connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB, h.Log)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
