package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStage is a project-specific sub-stage within a Phase. A stage is
// either bound to the StageTemplate it was copied from (TemplateStageID set)
// or created manually by a user (nil). OrderIndex is unique within
// (project, phase) and drives activation order.
type ProjectStage struct {
	BaseModel
	OrganizationID  uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID       uuid.UUID   `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_stage_order" validate:"required"`
	PhaseID         uuid.UUID   `json:"phase_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_stage_order" validate:"required"`
	TemplateStageID *uuid.UUID  `json:"template_stage_id,omitempty" gorm:"type:uuid;index"`
	Name            string      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description     string      `json:"description" gorm:"type:text"`
	Status          StageStatus `json:"status" gorm:"type:varchar(20);not null;default:'locked'"`
	OrderIndex      int         `json:"order_index" gorm:"not null;uniqueIndex:idx_project_stage_order"`
	DurationDays    int         `json:"duration_days" gorm:"not null;default:0"`
	StartedAt       *time.Time  `json:"started_at,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`

	// Relationships
	Project       Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Phase         Phase          `json:"phase,omitempty" gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE"`
	TemplateStage *StageTemplate `json:"template_stage,omitempty" gorm:"foreignKey:TemplateStageID;constraint:OnDelete:SET NULL"`
	Tasks         []Task         `json:"tasks,omitempty" gorm:"foreignKey:ProjectStageID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectStage
func (ProjectStage) TableName() string {
	return "project_stages"
}

// IsTemplateBound reports whether the stage was materialized from a
// StageTemplate rather than created manually.
func (s *ProjectStage) IsTemplateBound() bool {
	return s.TemplateStageID != nil
}
