// common.go
//
// Multi-step job application form state service.
// Shared request types and service-error mapping for the HTTP layer.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/formstate/internal/formdata"
	"github.com/hireflow/formstate/internal/types"
	"github.com/hireflow/formstate/internal/utils"
)

// jobInterestRequest tolerates single-item lists arriving as bare strings.
type jobInterestRequest struct {
	CategoryIDs     types.FlexList[string] `json:"categoryIds"`
	RoleIDs         types.FlexList[string] `json:"roleIds"`
	LocationID      string                 `json:"locationId"`
	MandatorySkills types.FlexList[string] `json:"mandatorySkills"`
	AdvantageSkills types.FlexList[string] `json:"advantageSkills"`
}

type formDataRequest struct {
	PersonalInfo  formdata.PersonalInfo  `json:"personalInfo"`
	JobInterest   jobInterestRequest     `json:"jobInterest"`
	Notifications formdata.Notifications `json:"notifications"`
}

func (r formDataRequest) toFormData() formdata.FormData {
	return formdata.FormData{
		PersonalInfo: r.PersonalInfo,
		JobInterest: formdata.JobInterest{
			CategoryIDs:     r.JobInterest.CategoryIDs.Slice(),
			RoleIDs:         r.JobInterest.RoleIDs.Slice(),
			LocationID:      r.JobInterest.LocationID,
			MandatorySkills: r.JobInterest.MandatorySkills.Slice(),
			AdvantageSkills: r.JobInterest.AdvantageSkills.Slice(),
		},
		Notifications: r.Notifications,
	}
}

// respondServiceError maps service-layer errors onto the envelope taxonomy.
func respondServiceError(c *fiber.Ctx, err error) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr.Message, verr.Details)
	}

	if errors.Is(err, types.ErrNotFound) {
		return utils.NotFoundResponse(c, "Resource not found")
	}

	var serr *types.StorageError
	if errors.As(err, &serr) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Storage operation failed")
	}

	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
