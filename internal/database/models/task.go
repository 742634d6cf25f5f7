package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is the executable unit of work. Tasks created by stage activation
// reference the stage that materialized them; unbound tasks (nil
// ProjectStageID) exist outside the roadmap. Deadline and assignee are set
// once at activation and not recomputed afterwards.
type Task struct {
	BaseModel
	OrganizationID     uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID          uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectStageID     *uuid.UUID `json:"project_stage_id,omitempty" gorm:"type:uuid;index"`
	Title              string     `json:"title" gorm:"not null;size:250" validate:"required,min=1,max=250"`
	Description        string     `json:"description" gorm:"type:text"`
	Status             TaskStatus `json:"status" gorm:"type:varchar(30);not null;default:'to_do'"`
	DurationDays       int        `json:"duration_days" gorm:"not null;default:1"`
	EstimatedHours     float64    `json:"estimated_hours" gorm:"not null;default:0"`
	RequiredCapability string     `json:"required_capability" gorm:"size:100"`
	AssigneeID         *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	AutoAssigned       bool       `json:"auto_assigned" gorm:"default:false"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	Tags               []string   `json:"tags" gorm:"serializer:json"`

	// Relationships
	Project      Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	ProjectStage *ProjectStage  `json:"project_stage,omitempty" gorm:"foreignKey:ProjectStageID;constraint:OnDelete:SET NULL"`
	Assignee     *ProjectMember `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
