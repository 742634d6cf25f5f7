package models

// Phase is a fixed top-level roadmap stage from the shared catalog
// (e.g. Preparation, Production, Launch, Final). Phases are global: they are
// not copied per project or per template. Per-project progression state
// lives in ProjectPhaseStatus.
type Phase struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"uniqueIndex;not null"`
	Color       string `json:"color" gorm:"size:20"`

	// Relationships
	StageTemplates []StageTemplate `json:"stage_templates,omitempty" gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Phase
func (Phase) TableName() string {
	return "phases"
}
