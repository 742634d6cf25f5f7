package models

import (
	"github.com/google/uuid"
)

// TaskBlueprint is a template-level task definition within a StageTemplate.
// Immutable at execution time; activation copies blueprints into Task rows.
// RequiredCapability is a job-title string matched against the project
// roster during auto-assignment, empty when any member may take the task.
type TaskBlueprint struct {
	BaseModel
	StageTemplateID    uuid.UUID `json:"stage_template_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title              string    `json:"title" gorm:"not null;size:250" validate:"required,min=1,max=250"`
	Description        string    `json:"description" gorm:"type:text"`
	DurationDays       int       `json:"duration_days" gorm:"not null;default:1" validate:"min=0"`
	EstimatedHours     float64   `json:"estimated_hours" gorm:"not null;default:0" validate:"min=0"`
	RequiredCapability string    `json:"required_capability" gorm:"size:100"`
	Tags               []string  `json:"tags" gorm:"serializer:json"`
	OrderIndex         int       `json:"order_index" gorm:"not null;default:0"`

	// Relationships
	StageTemplate StageTemplate `json:"stage_template,omitempty" gorm:"foreignKey:StageTemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TaskBlueprint
func (TaskBlueprint) TableName() string {
	return "task_blueprints"
}
