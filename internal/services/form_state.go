// form_state.go
//
// Multi-step job application form state service.
// Session-keyed draft persistence: upsert, retrieval, step/completion
// mutators and the final submit transaction.

package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/hireflow/formstate/internal/formdata"
	"github.com/hireflow/formstate/internal/models"
	"github.com/hireflow/formstate/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FormStateResult is the API projection of a stored form state: the XML
// payload is decoded back into structured form data.
type FormStateResult struct {
	ID          string            `json:"id"`
	SessionID   string            `json:"sessionId"`
	FormData    formdata.FormData `json:"formData"`
	CurrentStep int               `json:"currentStep"`
	IsCompleted bool              `json:"isCompleted"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// SaveFormState upserts the draft for sessionID in a single conditional
// write: an insert creates the row with is_completed false, a conflict on
// session_id replaces only the payload, step and updated_at. Returns the
// post-write row.
func SaveFormState(db *gorm.DB, sessionID string, data formdata.FormData, currentStep int) (*FormStateResult, error) {
	payload, err := formdata.Encode(data)
	if err != nil {
		return nil, types.NewStorageError("encode form data", err)
	}

	row := models.FormState{
		SessionID:   sessionID,
		FormDataXML: payload,
		CurrentStep: currentStep,
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"form_data_xml", "current_step", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, types.NewStorageError("save form state", err)
	}

	return GetFormState(db, sessionID)
}

// GetFormState loads and decodes the draft for sessionID. Returns
// types.ErrNotFound when no row exists. A stored payload that no longer
// decodes is a storage error for that read.
func GetFormState(db *gorm.DB, sessionID string) (*FormStateResult, error) {
	var row models.FormState
	err := db.Where("session_id = ?", sessionID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, types.NewStorageError("load form state", err)
	}

	data, err := formdata.Decode(row.FormDataXML)
	if err != nil {
		return nil, types.NewStorageError("decode form data", err)
	}

	return &FormStateResult{
		ID:          row.ID,
		SessionID:   row.SessionID,
		FormData:    data,
		CurrentStep: row.CurrentStep,
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// UpdateCurrentStep moves the session to the given step without touching
// the payload. Returns false when no row matched.
func UpdateCurrentStep(db *gorm.DB, sessionID string, step int) (bool, error) {
	result := db.Model(&models.FormState{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"current_step": step,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, types.NewStorageError("update step", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkCompleted flips the completion flag. Idempotent: a second call still
// reports success, and nothing ever resets the flag. Returns false when no
// row matched.
func MarkCompleted(db *gorm.DB, sessionID string) (bool, error) {
	// updated_at always changes, so RowsAffected stays 1 on repeat calls
	// even on drivers that skip no-op updates.
	result := db.Model(&models.FormState{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"is_completed": true,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, types.NewStorageError("mark completed", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// SubmitForm finalizes a session: inside one transaction it decodes the
// stored draft, creates the applicant, notification preferences and job
// registration rows, and marks the draft completed. Submitting an already
// completed session is a no-op success.
func SubmitForm(db *gorm.DB, sessionID string) (*FormStateResult, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var row models.FormState
		if err := tx.Where("session_id = ?", sessionID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return types.NewStorageError("load form state", err)
		}

		if row.IsCompleted {
			return nil
		}

		data, err := formdata.Decode(row.FormDataXML)
		if err != nil {
			return types.NewStorageError("decode form data", err)
		}

		if err := createSubmission(tx, data); err != nil {
			return err
		}

		if err := tx.Model(&row).Updates(map[string]interface{}{
			"is_completed": true,
			"updated_at":   time.Now(),
		}).Error; err != nil {
			return types.NewStorageError("mark completed", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetFormState(db, sessionID)
}

func createSubmission(tx *gorm.DB, data formdata.FormData) error {
	applicant := models.Applicant{
		FirstName: data.PersonalInfo.FirstName,
		LastName:  data.PersonalInfo.LastName,
		Phone:     data.PersonalInfo.Phone,
		Email:     data.PersonalInfo.Email,
	}
	if err := tx.Create(&applicant).Error; err != nil {
		return types.NewStorageError("create applicant", err)
	}

	prefs := models.NotificationPreference{
		ApplicantID:       applicant.ID,
		IsEmailEnabled:    data.Notifications.Email,
		IsPhoneEnabled:    data.Notifications.Phone,
		IsCallEnabled:     data.Notifications.Call,
		IsSMSEnabled:      data.Notifications.SMS,
		IsWhatsAppEnabled: data.Notifications.WhatsApp,
	}
	if err := tx.Create(&prefs).Error; err != nil {
		return types.NewStorageError("create notification preferences", err)
	}

	snapshot, err := json.Marshal(data.JobInterest)
	if err != nil {
		return types.NewStorageError("encode selection snapshot", err)
	}

	registration := models.JobRegistration{
		ApplicantID:  applicant.ID,
		LocationID:   data.JobInterest.LocationID,
		FormSnapshot: models.JSON{JSON: datatypes.JSON(snapshot)},
	}
	if len(data.JobInterest.CategoryIDs) > 0 {
		registration.PrimaryCategoryID = data.JobInterest.CategoryIDs[0]
	}
	if err := tx.Create(&registration).Error; err != nil {
		return types.NewStorageError("create job registration", err)
	}

	for _, roleID := range data.JobInterest.RoleIDs {
		link := models.JobRegistrationRole{
			JobRegistrationID: registration.ID,
			RoleID:            roleID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return types.NewStorageError("create registration role", err)
		}
	}

	for _, skillID := range data.JobInterest.MandatorySkills {
		link := models.JobRegistrationSkill{
			JobRegistrationID: registration.ID,
			SkillID:           skillID,
			Kind:              models.SkillKindMandatory,
		}
		if err := tx.Create(&link).Error; err != nil {
			return types.NewStorageError("create registration skill", err)
		}
	}
	for _, skillID := range data.JobInterest.AdvantageSkills {
		link := models.JobRegistrationSkill{
			JobRegistrationID: registration.ID,
			SkillID:           skillID,
			Kind:              models.SkillKindAdvantage,
		}
		if err := tx.Create(&link).Error; err != nil {
			return types.NewStorageError("create registration skill", err)
		}
	}

	return nil
}

// ApplicantSummary is one row of the admin applicants listing.
type ApplicantSummary struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ListApplicants enumerates submitted applicants, newest first.
func ListApplicants(db *gorm.DB) ([]ApplicantSummary, error) {
	var applicants []models.Applicant
	if err := db.Order("created_at DESC").Find(&applicants).Error; err != nil {
		return nil, types.NewStorageError("list applicants", err)
	}

	out := make([]ApplicantSummary, len(applicants))
	for i, a := range applicants {
		out[i] = ApplicantSummary{
			ID:          a.ID,
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Email:       a.Email,
			Phone:       a.Phone,
			SubmittedAt: a.CreatedAt,
		}
	}
	return out, nil
}
