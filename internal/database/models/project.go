package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusInactive ProjectStatus = "inactive"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project represents an agency client project whose delivery is tracked by
// the roadmap engine
type Project struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string          `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	DisplayName    string          `json:"display_name" gorm:"not null;size:250" validate:"required,max=250"`
	Description    string          `json:"description" gorm:"type:text"`
	ClientName     string          `json:"client_name" gorm:"size:200"`
	Status         ProjectStatus   `json:"status" gorm:"type:varchar(50);default:'active'" validate:"required"`
	Metadata       json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Organization  Organization         `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Members       []ProjectMember      `json:"members,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	PhaseStatuses []ProjectPhaseStatus `json:"phase_statuses,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Stages        []ProjectStage       `json:"stages,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks         []Task               `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
