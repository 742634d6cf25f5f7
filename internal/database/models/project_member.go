package models

import (
	"github.com/google/uuid"
)

// ProjectMember is a project-scoped roster entry mapping a user to a
// project. Role is the member's job title (e.g. "Editor", "Designer") and
// doubles as the capability tag the task materializer matches against
// blueprint requirements.
type ProjectMember struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID      uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName       string    `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string    `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Role           string    `json:"role" gorm:"not null;size:100" validate:"required,max=100"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
