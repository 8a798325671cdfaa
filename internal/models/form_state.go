package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormState is the session-scoped draft of the application wizard.
// At most one row exists per session; the payload lives in FormDataXML.
type FormState struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	SessionID   string `gorm:"uniqueIndex;size:255;not null"`
	FormDataXML string `gorm:"column:form_data_xml;type:text"`
	CurrentStep int    `gorm:"not null;default:1"`
	IsCompleted bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name for FormState
func (FormState) TableName() string {
	return "form_states"
}

// BeforeCreate assigns the server-generated identifier.
func (s *FormState) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
