package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/services"
	"github.com/hireflow/formstate/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApplicantHandler handles the admin applicants listing
type ApplicantHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// List handles GET /api/applicants
// @Summary List submitted applicants
// @Tags Applicants
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security CookieAuth
// @Router /applicants [get]
func (h *ApplicantHandler) List(c *fiber.Ctx) error {
	applicants, err := services.ListApplicants(h.DB)
	if err != nil {
		h.Log.Error("list applicants failed", zap.Error(err))
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Applicants loaded", applicants)
}
