// data.go
//
// Multi-step job application form state service.
// Seed helpers shared by the HTTP test suites.

package helpers

import (
	"testing"

	"github.com/hireflow/formstate/internal/formdata"
	"github.com/hireflow/formstate/internal/models"
	"gorm.io/gorm"
)

// SeedReferenceData inserts a small, known reference set.
func SeedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := []models.Category{
		{ID: "cat-dev", Name: "Software Development"},
		{ID: "cat-data", Name: "Data & Analytics"},
		{ID: "cat-student", Name: "Student"},
		{ID: "cat-noexp", Name: "No Experience"},
	}
	roles := []models.Role{
		{ID: "role-be", CategoryID: "cat-dev", Name: "Backend Engineer"},
		{ID: "role-fe", CategoryID: "cat-dev", Name: "Frontend Engineer"},
		{ID: "role-da", CategoryID: "cat-data", Name: "Data Analyst"},
	}
	locations := []models.Location{
		{ID: "loc-tlv", Name: "Tel Aviv"},
		{ID: "loc-remote", Name: "Remote"},
	}
	skillCategories := []models.SkillCategory{
		{ID: "sc-lang", Name: "Languages"},
	}
	skills := []models.Skill{
		{ID: "sk-he", SkillCategoryID: "sc-lang", Name: "Hebrew", Kind: models.SkillKindMandatory},
		{ID: "sk-en", SkillCategoryID: "sc-lang", Name: "English", Kind: models.SkillKindMandatory},
	}

	for _, seed := range []interface{}{&categories, &roles, &locations, &skillCategories, &skills} {
		if err := db.Create(seed).Error; err != nil {
			t.Fatalf("Failed to seed reference data: %v", err)
		}
	}
}

// SampleFormData builds a complete, valid form payload.
func SampleFormData() formdata.FormData {
	return formdata.FormData{
		PersonalInfo: formdata.PersonalInfo{
			FirstName: "Dana",
			LastName:  "Levi",
			Phone:     "050-1234567",
			Email:     "dana@example.com",
		},
		JobInterest: formdata.JobInterest{
			CategoryIDs:     []string{"cat-dev"},
			RoleIDs:         []string{"role-be"},
			LocationID:      "loc-tlv",
			MandatorySkills: []string{"sk-he"},
			AdvantageSkills: []string{"sk-en"},
		},
		Notifications: formdata.Notifications{
			Email: true,
			Phone: true,
			SMS:   true,
		},
	}
}

// CreateFormState inserts a draft row directly, bypassing the API.
func CreateFormState(t *testing.T, db *gorm.DB, sessionID string, data formdata.FormData, step int) {
	t.Helper()

	payload, err := formdata.Encode(data)
	if err != nil {
		t.Fatalf("Failed to encode form data: %v", err)
	}

	row := models.FormState{
		SessionID:   sessionID,
		FormDataXML: payload,
		CurrentStep: step,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("Failed to create form state: %v", err)
	}
}
