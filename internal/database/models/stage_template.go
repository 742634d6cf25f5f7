package models

import (
	"github.com/google/uuid"
)

// StageTemplate is a reusable sub-stage blueprint belonging to a Phase.
// Templates with a nil organization id are global; org-owned templates are
// visible only within that organization. Read-only at execution time:
// attaching a template to a project copies it into a ProjectStage.
type StageTemplate struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	PhaseID        uuid.UUID  `json:"phase_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string     `json:"description" gorm:"type:text"`
	DurationDays   int        `json:"duration_days" gorm:"not null;default:0" validate:"min=0"`
	Position       int        `json:"position" gorm:"not null;default:0"`

	// Relationships
	Phase          Phase           `json:"phase,omitempty" gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE"`
	TaskBlueprints []TaskBlueprint `json:"task_blueprints,omitempty" gorm:"foreignKey:StageTemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StageTemplate
func (StageTemplate) TableName() string {
	return "stage_templates"
}
