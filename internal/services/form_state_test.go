package services

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hireflow/formstate/internal/formdata"
	"github.com/hireflow/formstate/internal/models"
	"github.com/hireflow/formstate/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.FormState{},
		&models.Category{},
		&models.Role{},
		&models.Location{},
		&models.SkillCategory{},
		&models.Skill{},
		&models.Applicant{},
		&models.NotificationPreference{},
		&models.JobRegistration{},
		&models.JobRegistrationRole{},
		&models.JobRegistrationSkill{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func sampleFormData() formdata.FormData {
	return formdata.FormData{
		PersonalInfo: formdata.PersonalInfo{
			FirstName: "Dana",
			LastName:  "Levi",
			Phone:     "050-1234567",
			Email:     "dana@example.com",
		},
		JobInterest: formdata.JobInterest{
			CategoryIDs:     []string{"cat-1"},
			RoleIDs:         []string{"role-1", "role-2"},
			LocationID:      "loc-1",
			MandatorySkills: []string{"skill-1"},
			AdvantageSkills: []string{"skill-2"},
		},
		Notifications: formdata.Notifications{
			Email: true,
			Phone: true,
			SMS:   true,
		},
	}
}

func TestSaveFormStateInsert(t *testing.T) {
	db := openTestDB(t)

	result, err := SaveFormState(db, "session-1", sampleFormData(), 2)
	if err != nil {
		t.Fatalf("SaveFormState failed: %v", err)
	}

	if result.SessionID != "session-1" {
		t.Errorf("Expected sessionId session-1, got %q", result.SessionID)
	}
	if result.CurrentStep != 2 {
		t.Errorf("Expected currentStep 2, got %d", result.CurrentStep)
	}
	if result.IsCompleted {
		t.Error("Expected new state to be incomplete")
	}
	if result.ID == "" {
		t.Error("Expected server-generated id on the returned state")
	}
	if result.FormData.PersonalInfo.Email != "dana@example.com" {
		t.Errorf("Expected stored email round-tripped, got %q", result.FormData.PersonalInfo.Email)
	}
}

func TestSaveFormStateUpsertKeepsIdentity(t *testing.T) {
	db := openTestDB(t)

	first, err := SaveFormState(db, "session-1", sampleFormData(), 1)
	if err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	updated := sampleFormData()
	updated.PersonalInfo.FirstName = "Noa"
	second, err := SaveFormState(db, "session-1", updated, 3)
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	if second.FormData.PersonalInfo.FirstName != "Noa" {
		t.Errorf("Expected payload replaced, got %q", second.FormData.PersonalInfo.FirstName)
	}
	if second.CurrentStep != 3 {
		t.Errorf("Expected step advanced to 3, got %d", second.CurrentStep)
	}
	if first.ID == "" || second.ID != first.ID {
		t.Errorf("Expected upsert to keep id %q, got %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("Expected created_at unchanged by upsert")
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Error("Expected updated_at to move forward on upsert")
	}

	var count int64
	db.Model(&models.FormState{}).Where("session_id = ?", "session-1").Count(&count)
	if count != 1 {
		t.Errorf("Expected one row per session, got %d", count)
	}
}

func TestSaveFormStateDoesNotResetCompletion(t *testing.T) {
	db := openTestDB(t)

	if _, err := SaveFormState(db, "session-1", sampleFormData(), 4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := MarkCompleted(db, "session-1"); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}

	result, err := SaveFormState(db, "session-1", sampleFormData(), 4)
	if err != nil {
		t.Fatalf("Save after completion failed: %v", err)
	}
	if !result.IsCompleted {
		t.Error("Expected completion flag to survive a later save")
	}
}

func TestGetFormStateNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetFormState(db, "missing")
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetFormStateUndecodablePayload(t *testing.T) {
	db := openTestDB(t)

	row := models.FormState{SessionID: "session-1", FormDataXML: "<not-closed", CurrentStep: 1}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	_, err := GetFormState(db, "session-1")
	var serr *types.StorageError
	if !errors.As(err, &serr) {
		t.Errorf("Expected StorageError for undecodable payload, got %v", err)
	}
}

func TestUpdateCurrentStep(t *testing.T) {
	db := openTestDB(t)

	if _, err := SaveFormState(db, "session-1", sampleFormData(), 1); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	found, err := UpdateCurrentStep(db, "session-1", 3)
	if err != nil {
		t.Fatalf("UpdateCurrentStep failed: %v", err)
	}
	if !found {
		t.Error("Expected existing row to match")
	}

	state, _ := GetFormState(db, "session-1")
	if state.CurrentStep != 3 {
		t.Errorf("Expected step 3, got %d", state.CurrentStep)
	}
	if state.FormData.PersonalInfo.FirstName != "Dana" {
		t.Error("Expected payload untouched by step update")
	}

	found, err = UpdateCurrentStep(db, "missing", 2)
	if err != nil {
		t.Fatalf("UpdateCurrentStep failed: %v", err)
	}
	if found {
		t.Error("Expected no match for unknown session")
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	db := openTestDB(t)

	if _, err := SaveFormState(db, "session-1", sampleFormData(), 4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		found, err := MarkCompleted(db, "session-1")
		if err != nil {
			t.Fatalf("MarkCompleted call %d failed: %v", i+1, err)
		}
		if !found {
			t.Errorf("Expected call %d to report a match", i+1)
		}
	}

	state, _ := GetFormState(db, "session-1")
	if !state.IsCompleted {
		t.Error("Expected completed flag set")
	}

	found, err := MarkCompleted(db, "missing")
	if err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	if found {
		t.Error("Expected no match for unknown session")
	}
}

func TestSubmitFormCreatesSubmission(t *testing.T) {
	db := openTestDB(t)

	if _, err := SaveFormState(db, "session-1", sampleFormData(), 4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	result, err := SubmitForm(db, "session-1")
	if err != nil {
		t.Fatalf("SubmitForm failed: %v", err)
	}
	if !result.IsCompleted {
		t.Error("Expected submitted state to be completed")
	}

	var applicant models.Applicant
	if err := db.Where("email = ?", "dana@example.com").First(&applicant).Error; err != nil {
		t.Fatalf("Expected applicant created: %v", err)
	}

	var prefs models.NotificationPreference
	if err := db.Where("applicant_id = ?", applicant.ID).First(&prefs).Error; err != nil {
		t.Fatalf("Expected notification preferences created: %v", err)
	}
	if !prefs.IsEmailEnabled || !prefs.IsPhoneEnabled || !prefs.IsSMSEnabled {
		t.Error("Expected channel flags carried over")
	}
	if prefs.IsCallEnabled || prefs.IsWhatsAppEnabled {
		t.Error("Expected disabled channels to stay off")
	}

	var registration models.JobRegistration
	if err := db.Where("applicant_id = ?", applicant.ID).First(&registration).Error; err != nil {
		t.Fatalf("Expected job registration created: %v", err)
	}
	if registration.PrimaryCategoryID != "cat-1" {
		t.Errorf("Expected primary category cat-1, got %q", registration.PrimaryCategoryID)
	}
	if registration.LocationID != "loc-1" {
		t.Errorf("Expected location loc-1, got %q", registration.LocationID)
	}

	var roleCount, skillCount int64
	db.Model(&models.JobRegistrationRole{}).Where("job_registration_id = ?", registration.ID).Count(&roleCount)
	db.Model(&models.JobRegistrationSkill{}).Where("job_registration_id = ?", registration.ID).Count(&skillCount)
	if roleCount != 2 {
		t.Errorf("Expected 2 role links, got %d", roleCount)
	}
	if skillCount != 2 {
		t.Errorf("Expected 2 skill links, got %d", skillCount)
	}
}

func TestSubmitFormAlreadyCompletedIsNoOp(t *testing.T) {
	db := openTestDB(t)

	if _, err := SaveFormState(db, "session-1", sampleFormData(), 4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := SubmitForm(db, "session-1"); err != nil {
		t.Fatalf("First submit failed: %v", err)
	}
	if _, err := SubmitForm(db, "session-1"); err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}

	var applicants int64
	db.Model(&models.Applicant{}).Count(&applicants)
	if applicants != 1 {
		t.Errorf("Expected a single applicant after repeat submit, got %d", applicants)
	}
}

func TestSubmitFormNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := SubmitForm(db, "missing")
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListApplicants(t *testing.T) {
	db := openTestDB(t)

	for _, session := range []string{"s1", "s2"} {
		data := sampleFormData()
		data.PersonalInfo.Email = session + "@example.com"
		if _, err := SaveFormState(db, session, data, 4); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if _, err := SubmitForm(db, session); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	applicants, err := ListApplicants(db)
	if err != nil {
		t.Fatalf("ListApplicants failed: %v", err)
	}
	if len(applicants) != 2 {
		t.Errorf("Expected 2 applicants, got %d", len(applicants))
	}
}
