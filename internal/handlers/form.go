// form.go
//
// Multi-step job application form state service.
// Form-state routes: save, load, step update and final submit.

package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/services"
	"github.com/hireflow/formstate/internal/types"
	"github.com/hireflow/formstate/internal/utils"
	"github.com/hireflow/formstate/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormHandler handles form-state routes
type FormHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

type saveStateRequest struct {
	SessionID   string          `json:"sessionId"`
	CurrentStep *types.FlexInt  `json:"currentStep"`
	FormData    formDataRequest `json:"formData"`
}

type updateStepRequest struct {
	SessionID   string        `json:"sessionId"`
	CurrentStep types.FlexInt `json:"currentStep"`
}

type submitRequest struct {
	SessionID string `json:"sessionId"`
}

// SaveState handles POST /api/form/save-state
// @Summary Save form state
// @Description Upsert the draft form payload for a session
// @Tags Form
// @Accept json
// @Produce json
// @Param request body saveStateRequest true "Session, step and form payload"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /form/save-state [post]
func (h *FormHandler) SaveState(c *fiber.Ctx) error {
	body := c.Body()

	if err := validation.ValidateSaveState(body); err != nil {
		return respondServiceError(c, err)
	}

	var req saveStateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.ValidationErrorResponse(c, "Malformed request body", nil)
	}

	// An omitted step starts the wizard; an explicit one, zero included,
	// must be in range.
	step := validation.MinStep
	if req.CurrentStep != nil {
		step = req.CurrentStep.Int()
	}
	if err := validation.CheckStep(step); err != nil {
		return respondServiceError(c, err)
	}

	data := validation.Normalize(req.FormData.toFormData())

	result, err := services.SaveFormState(h.DB, req.SessionID, data, step)
	if err != nil {
		h.Log.Error("save form state failed",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, "Form state saved", result)
}

// GetState handles GET /api/form/state/:sessionId
// @Summary Get form state
// @Description Load the stored draft for a session
// @Tags Form
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /form/state/{sessionId} [get]
func (h *FormHandler) GetState(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if err := validation.CheckSessionID(sessionID); err != nil {
		return respondServiceError(c, err)
	}

	result, err := services.GetFormState(h.DB, sessionID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return utils.NotFoundResponse(c, "No form state for session")
		}
		h.Log.Error("load form state failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, "Form state loaded", result)
}

// UpdateStep handles PUT /api/form/update-step
// @Summary Update current step
// @Description Move a session to another wizard step without touching the payload
// @Tags Form
// @Accept json
// @Produce json
// @Param request body updateStepRequest true "Session and target step"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /form/update-step [put]
func (h *FormHandler) UpdateStep(c *fiber.Ctx) error {
	body := c.Body()

	if err := validation.ValidateUpdateStep(body); err != nil {
		return respondServiceError(c, err)
	}

	var req updateStepRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.ValidationErrorResponse(c, "Malformed request body", nil)
	}

	if err := validation.CheckStep(req.CurrentStep.Int()); err != nil {
		return respondServiceError(c, err)
	}

	found, err := services.UpdateCurrentStep(h.DB, req.SessionID, req.CurrentStep.Int())
	if err != nil {
		h.Log.Error("update step failed",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		return respondServiceError(c, err)
	}
	if !found {
		return utils.NotFoundResponse(c, "No form state for session")
	}

	return utils.SuccessResponse(c, "Step updated", fiber.Map{
		"sessionId":   req.SessionID,
		"currentStep": req.CurrentStep.Int(),
	})
}

// Submit handles POST /api/form/submit
// @Summary Submit the form
// @Description Finalize a session: create the applicant records and mark the draft completed
// @Tags Form
// @Accept json
// @Produce json
// @Param request body submitRequest true "Session to submit"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /form/submit [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	body := c.Body()

	if err := validation.ValidateSubmit(body); err != nil {
		return respondServiceError(c, err)
	}

	var req submitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.ValidationErrorResponse(c, "Malformed request body", nil)
	}

	result, err := services.SubmitForm(h.DB, req.SessionID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return utils.NotFoundResponse(c, "No form state for session")
		}
		h.Log.Error("submit failed",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, "Form submitted", result)
}
