package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectPhaseStatus tracks one project's progression through one Phase.
// Created when the project roadmap is bootstrapped and mutated only by the
// completion advancer. At most one row per project is active at any time;
// rows below the active one are completed, rows above it are locked.
type ProjectPhaseStatus struct {
	BaseModel
	OrganizationID uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID      uuid.UUID   `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_phase" validate:"required"`
	PhaseID        uuid.UUID   `json:"phase_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_phase" validate:"required"`
	Status         StageStatus `json:"status" gorm:"type:varchar(20);not null;default:'locked'"`
	OrderIndex     int         `json:"order_index" gorm:"not null"`
	StartedAt      *time.Time  `json:"started_at,omitempty"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Phase   Phase   `json:"phase,omitempty" gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectPhaseStatus
func (ProjectPhaseStatus) TableName() string {
	return "project_phase_statuses"
}
