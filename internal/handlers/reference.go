// reference.go
//
// Multi-step job application form state service.
// Reference-data routes served through the TTL cache.

package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/services"
	"github.com/hireflow/formstate/internal/types"
	"github.com/hireflow/formstate/internal/utils"
	"github.com/hireflow/formstate/internal/validation"
	"go.uber.org/zap"
)

// ReferenceHandler handles reference-data routes
type ReferenceHandler struct {
	Service *services.ReferenceService
	Log     *zap.Logger
}

type roleSearchRequest struct {
	CategoryIDs types.FlexList[string] `json:"categoryIds"`
	SearchText  string                 `json:"searchText"`
}

// All handles GET /api/reference/all
// @Summary All reference data
// @Description Every reference list in one payload
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /reference/all [get]
func (h *ReferenceHandler) All(c *fiber.Ctx) error {
	data, err := h.Service.All(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Reference data loaded", data)
}

// Categories handles GET /api/reference/categories
// @Summary List job categories
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /reference/categories [get]
func (h *ReferenceHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.Service.Categories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Categories loaded", categories)
}

// Roles handles GET /api/reference/roles and /api/reference/roles/:categoryId
// @Summary List roles
// @Description List roles, optionally scoped to one category
// @Tags Reference
// @Produce json
// @Param categoryId path string false "Category ID"
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /reference/roles/{categoryId} [get]
func (h *ReferenceHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.Service.Roles(c.Context(), c.Params("categoryId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Roles loaded", roles)
}

// SearchRoles handles POST /api/reference/roles/search
// @Summary Search roles
// @Description Case-insensitive substring search across the given categories
// @Tags Reference
// @Accept json
// @Produce json
// @Param request body roleSearchRequest true "Categories and text fragment"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /reference/roles/search [post]
func (h *ReferenceHandler) SearchRoles(c *fiber.Ctx) error {
	body := c.Body()

	if err := validation.ValidateRoleSearch(body); err != nil {
		return respondServiceError(c, err)
	}

	var req roleSearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.ValidationErrorResponse(c, "Malformed request body", nil)
	}

	roles, err := h.Service.SearchRoles(c.Context(), req.CategoryIDs.Slice(), req.SearchText)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Roles loaded", roles)
}

// Locations handles GET /api/reference/locations
// @Summary List locations
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /reference/locations [get]
func (h *ReferenceHandler) Locations(c *fiber.Ctx) error {
	locations, err := h.Service.Locations(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Locations loaded", locations)
}

// SkillCategories handles GET /api/reference/skill-categories
// @Summary List skill categories
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /reference/skill-categories [get]
func (h *ReferenceHandler) SkillCategories(c *fiber.Ctx) error {
	skillCategories, err := h.Service.SkillCategories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Skill categories loaded", skillCategories)
}

// Skills handles GET /api/reference/skills and /api/reference/skills/:skillCategoryId
// @Summary List skills
// @Description List skills, optionally scoped to one skill category. A search query switches to a capped name search.
// @Tags Reference
// @Produce json
// @Param skillCategoryId path string false "Skill category ID"
// @Param search query string false "Name fragment"
// @Param limit query int false "Result cap for searches"
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /reference/skills/{skillCategoryId} [get]
func (h *ReferenceHandler) Skills(c *fiber.Ctx) error {
	skillCategoryID := c.Params("skillCategoryId")

	if search := c.Query("search"); search != "" {
		skills, err := h.Service.SearchSkills(c.Context(), skillCategoryID, search, c.QueryInt("limit"))
		if err != nil {
			return respondServiceError(c, err)
		}
		return utils.SuccessResponse(c, "Skills loaded", skills)
	}

	skills, err := h.Service.Skills(c.Context(), skillCategoryID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Skills loaded", skills)
}

// RefreshCache handles POST /api/reference/refresh-cache
// @Summary Refresh the reference cache
// @Description Evict every cached entry and pre-warm the unfiltered lists
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security CookieAuth
// @Router /reference/refresh-cache [post]
func (h *ReferenceHandler) RefreshCache(c *fiber.Ctx) error {
	if err := h.Service.RefreshCache(c.Context()); err != nil {
		h.Log.Error("reference cache refresh failed", zap.Error(err))
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Reference cache refreshed", nil)
}
