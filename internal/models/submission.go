package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission entities are written once, inside a single transaction, when a
// session completes the wizard.

// Applicant is the person created from the personal-info step.
type Applicant struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	FirstName string    `gorm:"size:255;not null" json:"firstName"`
	LastName  string    `gorm:"size:255;not null" json:"lastName"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotificationPreference captures the applicant's channel toggles at submit
// time. Call/SMS/WhatsApp are only meaningful when Phone is enabled.
type NotificationPreference struct {
	ID                string `gorm:"type:char(36);primaryKey"`
	ApplicantID       string `gorm:"type:char(36);not null;uniqueIndex"`
	IsEmailEnabled    bool   `gorm:"not null;default:false"`
	IsPhoneEnabled    bool   `gorm:"not null;default:false"`
	IsCallEnabled     bool   `gorm:"not null;default:false"`
	IsSMSEnabled      bool   `gorm:"column:is_sms_enabled;not null;default:false"`
	IsWhatsAppEnabled bool   `gorm:"column:is_whatsapp_enabled;not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// JobRegistration is the normalized job-interest record. FormSnapshot keeps
// the raw selections as submitted, for auditing.
type JobRegistration struct {
	ID                string                 `gorm:"type:char(36);primaryKey"`
	ApplicantID       string                 `gorm:"type:char(36);not null;index"`
	PrimaryCategoryID string                 `gorm:"type:char(36)"`
	LocationID        string                 `gorm:"type:char(36)"`
	FormSnapshot      JSON                   `gorm:"type:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Roles             []JobRegistrationRole  `gorm:"foreignKey:JobRegistrationID"`
	Skills            []JobRegistrationSkill `gorm:"foreignKey:JobRegistrationID"`
}

// JobRegistrationRole links a registration to one requested role.
type JobRegistrationRole struct {
	ID                string `gorm:"type:char(36);primaryKey"`
	JobRegistrationID string `gorm:"type:char(36);not null;index"`
	RoleID            string `gorm:"type:char(36);not null"`
	CreatedAt         time.Time
}

// JobRegistrationSkill links a registration to one selected skill.
// Kind records which list (mandatory/advantage) the skill came from.
type JobRegistrationSkill struct {
	ID                string `gorm:"type:char(36);primaryKey"`
	JobRegistrationID string `gorm:"type:char(36);not null;index"`
	SkillID           string `gorm:"type:char(36);not null"`
	Kind              string `gorm:"size:32"`
	CreatedAt         time.Time
}

// TableName overrides the table name for Applicant
func (Applicant) TableName() string {
	return "applicants"
}

// TableName overrides the table name for NotificationPreference
func (NotificationPreference) TableName() string {
	return "notification_preferences"
}

// TableName overrides the table name for JobRegistration
func (JobRegistration) TableName() string {
	return "job_registrations"
}

// TableName overrides the table name for JobRegistrationRole
func (JobRegistrationRole) TableName() string {
	return "job_registration_roles"
}

// TableName overrides the table name for JobRegistrationSkill
func (JobRegistrationSkill) TableName() string {
	return "job_registration_skills"
}

// BeforeCreate assigns the server-generated identifier.
func (a *Applicant) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns the server-generated identifier.
func (n *NotificationPreference) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns the server-generated identifier.
func (r *JobRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns the server-generated identifier.
func (r *JobRegistrationRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns the server-generated identifier.
func (s *JobRegistrationSkill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
