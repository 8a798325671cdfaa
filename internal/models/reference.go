package models

import "time"

// Reference entities are seed/master data: read-only from the form flow,
// refreshed wholesale by the reference cache.

// Category is a top-level job category.
type Category struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Role is a job role belonging to a Category.
type Role struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	CategoryID string    `gorm:"type:char(36);not null;index" json:"categoryId"`
	Name       string    `gorm:"size:255;not null;index" json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Location is a work location option.
type Location struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SkillCategory groups skills for the skill picker.
type SkillCategory struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Skill kinds. Empty means the skill carries no fixed tag and may be picked
// into either list.
const (
	SkillKindMandatory = "mandatory"
	SkillKindAdvantage = "advantage"
)

// Skill is a selectable skill, optionally tagged mandatory/advantage.
type Skill struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	SkillCategoryID string    `gorm:"type:char(36);index" json:"skillCategoryId"`
	Name            string    `gorm:"size:255;not null;index" json:"name"`
	Kind            string    `gorm:"size:32" json:"kind,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TableName overrides the table name for Category
func (Category) TableName() string {
	return "categories"
}

// TableName overrides the table name for Role
func (Role) TableName() string {
	return "roles"
}

// TableName overrides the table name for Location
func (Location) TableName() string {
	return "locations"
}

// TableName overrides the table name for SkillCategory
func (SkillCategory) TableName() string {
	return "skill_categories"
}

// TableName overrides the table name for Skill
func (Skill) TableName() string {
	return "skills"
}
